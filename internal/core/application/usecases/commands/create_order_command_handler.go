package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves the submitted lines against the catalog, snapshots prices, computes
// the total and the estimated preparation time, and persists the new order in
// "pending" status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	intake     *services.IntakeValidator
	pricing    services.PricingService
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence and an
// IntakeValidator for catalog resolution.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	intake *services.IntakeValidator,
	pricing services.PricingService,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		intake:     intake,
		pricing:    pricing,
	}
}

// Handle processes the order placement command.
// The order and all of its items are persisted atomically; the repository
// assigns the human-readable order number during Add.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	quotes, err := h.intake.Validate(ctx, cmd.Lines())
	if err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(quotes))
	for _, q := range quotes {
		item, err := order.NewItem(kernel.NewUUID(), q.ProductID, q.Quantity, q.UnitPrice, q.LineTotal(), q.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.TableNumber(),
		cmd.PaymentMethod(),
		cmd.Notes(),
		h.pricing.OrderTotal(quotes),
		h.pricing.EstimatedTime(quotes),
		cmd.OwnerID(),
		items,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
