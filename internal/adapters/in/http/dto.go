package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
)

type createOrderRequest struct {
	CustomerName  string                   `json:"customerName"`
	CustomerPhone string                   `json:"customerPhone,omitempty"`
	TableNumber   *int                     `json:"tableNumber,omitempty"`
	PaymentMethod string                   `json:"paymentMethod"`
	Notes         string                   `json:"notes,omitempty"`
	Items         []createOrderItemRequest `json:"items"`
}

type createOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

type listOrdersRequest struct {
	Status string `query:"status"`
	Date   string `query:"date"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type itemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
	Notes       string  `json:"notes,omitempty"`
}

type ownerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type orderResponse struct {
	ID            string         `json:"id"`
	OrderNumber   string         `json:"orderNumber"`
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone,omitempty"`
	TableNumber   *int           `json:"tableNumber,omitempty"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"totalAmount"`
	PaymentMethod string         `json:"paymentMethod"`
	Notes         string         `json:"notes,omitempty"`
	EstimatedTime int            `json:"estimatedTime"`
	Owner         *ownerResponse `json:"owner,omitempty"`
	Items         []itemResponse `json:"items"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type orderSummaryResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	TableNumber   *int      `json:"tableNumber,omitempty"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"totalAmount"`
	EstimatedTime int       `json:"estimatedTime"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type listOrdersResponse struct {
	Orders []orderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Page   int                    `json:"page"`
	Limit  int                    `json:"limit"`
}

func fromDetail(detail queries.OrderDetail) orderResponse {
	items := make([]itemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, itemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Notes:       item.Notes,
		})
	}

	var owner *ownerResponse
	if detail.Owner != nil {
		owner = &ownerResponse{
			ID:    detail.Owner.ID.String(),
			Name:  detail.Owner.Name,
			Email: detail.Owner.Email,
		}
	}

	return orderResponse{
		ID:            detail.ID.String(),
		OrderNumber:   detail.OrderNumber,
		CustomerName:  detail.CustomerName,
		CustomerPhone: detail.CustomerPhone,
		TableNumber:   detail.TableNumber,
		Status:        detail.Status,
		TotalAmount:   detail.TotalAmount,
		PaymentMethod: detail.PaymentMethod,
		Notes:         detail.Notes,
		EstimatedTime: detail.EstimatedTime,
		Owner:         owner,
		Items:         items,
		CreatedAt:     detail.CreatedAt,
		UpdatedAt:     detail.UpdatedAt,
	}
}

func fromDetails(details []queries.OrderDetail) []orderResponse {
	responses := make([]orderResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, fromDetail(detail))
	}
	return responses
}

func fromSummaries(summaries []queries.OrderSummary) []orderSummaryResponse {
	responses := make([]orderSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, orderSummaryResponse{
			ID:            summary.ID.String(),
			OrderNumber:   summary.OrderNumber,
			CustomerName:  summary.CustomerName,
			TableNumber:   summary.TableNumber,
			Status:        summary.Status,
			TotalAmount:   summary.TotalAmount,
			EstimatedTime: summary.EstimatedTime,
			ItemCount:     summary.ItemCount,
			CreatedAt:     summary.CreatedAt,
			UpdatedAt:     summary.UpdatedAt,
		})
	}
	return responses
}
