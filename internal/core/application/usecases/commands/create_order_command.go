package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Carries the raw customer input; catalog resolution, pricing, and the
// remaining business validation happen in the handler and the domain.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Maria Silva", "", nil,
//	    order.PaymentPix, "", nil, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, intake, pricing)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	tableNumber   *int
	paymentMethod order.PaymentMethod
	notes         string
	ownerID       *kernel.UUID
	lines         []services.IntakeLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is set, the customer name is not blank, the
// payment method is known, and at least one line is present. The full bounds
// checks live in the domain model and the intake validator.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	tableNumber *int,
	paymentMethod order.PaymentMethod,
	notes string,
	ownerID *kernel.UUID,
	lines []services.IntakeLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerPhone: customerPhone,
		tableNumber:   tableNumber,
		notes:         notes,
		ownerID:       ownerID,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name the order is placed under.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the optional contact phone.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// TableNumber returns the optional table reference.
func (c CreateOrderCommand) TableNumber() *int {
	return c.tableNumber
}

// PaymentMethod returns how the customer intends to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// OwnerID returns the identifier of the account that placed the order, if any.
func (c CreateOrderCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

// Lines returns the raw submitted order lines.
func (c CreateOrderCommand) Lines() []services.IntakeLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.IntakeLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.lines = lines
	return nil
}
