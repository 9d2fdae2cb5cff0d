// Package http exposes the order operations over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// transport concerns (binding, status codes) at the boundary.
package http

import (
	"errors"
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the caller's verified account id. Authentication is
// handled upstream; the API only forwards the identity.
const userIDHeader = "X-User-Id"

// Server handles the REST API for orders.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getOrdersByUserHandler   queries.GetOrdersByUserQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getOrdersByUserHandler:   getOrdersByUserHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.GET("/orders/status/:status", s.GetOrdersByStatus)
	v1.GET("/orders/user/:userId", s.GetOrdersByUser)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.PATCH("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+req.PaymentMethod)
	}

	lines := make([]services.IntakeLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+item.ProductID)
		}
		lines = append(lines, services.IntakeLine{
			ProductID: productID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}

	var ownerID *kernel.UUID
	if header := ctx.Request().Header.Get(userIDHeader); header != "" {
		id, idErr := kernel.UUIDFromString(header)
		if idErr != nil {
			return badRequest(ctx, "Invalid "+userIDHeader+" header")
		}
		ownerID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerName, req.CustomerPhone,
		req.TableNumber, paymentMethod, req.Notes, ownerID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromDetail(detail))
}

// ListOrders handles GET /api/v1/orders - lists order summaries.
func (s *Server) ListOrders(ctx echo.Context) error {
	var req listOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid query parameters")
	}

	var status *order.Status
	if req.Status != "" {
		parsed, err := order.StatusFromString(req.Status)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+req.Status)
		}
		status = &parsed
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return badRequest(ctx, "Invalid date, expected YYYY-MM-DD: "+req.Date)
		}
		date = &parsed
	}

	query, err := queries.NewListOrdersQuery(status, date, req.Page, req.Limit)
	if err != nil {
		return mapError(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listOrdersResponse{
		Orders: fromSummaries(page.Orders),
		Total:  page.Total,
		Page:   query.Page(),
		Limit:  query.Limit(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order's detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDetail(detail))
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return mapError(ctx, err)
	}

	details, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDetails(details))
}

// GetOrdersByUser handles GET /api/v1/orders/user/:userId.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return mapError(ctx, err)
	}

	details, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDetails(details))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.Note)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return mapError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromDetail(detail))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates domain and application errors to HTTP status codes.
// Business rule violations map to 400, missing objects to 404, anything
// unexpected to 500.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrProductInactive),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyCancelled),
		errors.Is(err, order.ErrAlreadyDelivered),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
