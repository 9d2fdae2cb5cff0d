package order

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	// MinItems is the smallest number of lines an order may carry.
	MinItems = 1

	// MaxItems is the largest number of lines an order may carry.
	MaxItems = 20

	// MinTableNumber and MaxTableNumber bound the optional table reference.
	MinTableNumber = 1
	MaxTableNumber = 100

	minCustomerNameLen = 2
	maxCustomerNameLen = 100
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNumberAlreadyAssigned is returned when a second order number
	// assignment is attempted. The number is immutable once set.
	ErrOrderNumberAlreadyAssigned = errors.New("order number is already assigned")

	// ErrAlreadyCancelled is returned by Cancel on an order that is already cancelled.
	ErrAlreadyCancelled = errors.New("order is already cancelled")

	// ErrAlreadyDelivered is returned by Cancel on an order that was delivered.
	ErrAlreadyDelivered = errors.New("order is already delivered")

	phonePattern = regexp.MustCompile(`^[\d\s()+\-]{10,20}$`)
)

// Order is the aggregate root for a food-service order. It owns its line
// items and its lifecycle: items are immutable after creation, and the status
// only moves along the edges of the transition table in status.go.
//
// Order invariants:
//   - totalAmount equals the sum of the items' total prices
//   - between MinItems and MaxItems line items
//   - orderNumber is assigned exactly once, by the repository at creation
//   - customer name is 2-100 characters; phone, when present, 10-20 characters
//   - table number, when present, is between 1 and 100
type Order struct {
	id            kernel.UUID
	orderNumber   string
	customerName  string
	customerPhone string
	tableNumber   *int
	status        Status
	totalAmount   kernel.Money
	paymentMethod PaymentMethod
	notes         string
	estimatedTime int
	ownerID       *kernel.UUID
	items         []*Item
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a new order in Pending status. The total amount and
// estimated preparation time are computed by the pricing service before the
// order is constructed; the constructor re-checks that the total matches the
// items so the invariant cannot be bypassed.
//
// The order number is intentionally absent here: the repository assigns it
// exactly once during persistence.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	tableNumber *int,
	paymentMethod PaymentMethod,
	notes string,
	totalAmount kernel.Money,
	estimatedTime int,
	ownerID *kernel.UUID,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setTableNumber(tableNumber),
		o.setPaymentMethod(paymentMethod),
		o.setEstimatedTime(estimatedTime),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including the fields
// that only exist after creation: order number, current status, accumulated
// notes, and timestamps. All creation-time invariants are re-validated.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	customerPhone string,
	tableNumber *int,
	status Status,
	totalAmount kernel.Money,
	paymentMethod PaymentMethod,
	notes string,
	estimatedTime int,
	ownerID *kernel.UUID,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerName, customerPhone, tableNumber, paymentMethod,
		notes, totalAmount, estimatedTime, ownerID, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	o.orderNumber = orderNumber
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the server-generated number, or "" before persistence.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the name the order was placed under.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the optional contact phone, or "" when absent.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// TableNumber returns the optional table reference, or nil when absent.
func (o *Order) TableNumber() *int {
	return o.tableNumber
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the server-computed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaymentMethod returns the declared payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Notes returns the append-only notes log.
func (o *Order) Notes() string {
	return o.notes
}

// EstimatedTime returns the estimated preparation time in minutes.
func (o *Order) EstimatedTime() int {
	return o.estimatedTime
}

// Owner returns the identifier of the creating caller, or nil for anonymous orders.
func (o *Order) Owner() *kernel.UUID {
	return o.ownerID
}

// Items returns the order's line items. The slice and its items are immutable.
func (o *Order) Items() []*Item {
	return o.items
}

// CreatedAt returns the persistence creation timestamp (zero before persistence).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last persistence update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignOrderNumber records the number generated during persistence.
// A number can be assigned exactly once.
func (o *Order) AssignOrderNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if o.orderNumber != "" {
		return ErrOrderNumberAlreadyAssigned
	}
	o.orderNumber = number
	return nil
}

// ChangeStatus moves the order to next if the transition table allows it,
// appending the optional note to the order's notes log.
// Returns an InvalidTransitionError (unwrapping ErrInvalidTransition) for
// illegal moves, including any move out of a terminal state.
func (o *Order) ChangeStatus(next Status, note string) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if note != "" {
		o.appendNote(note)
	}
	return nil
}

// Cancel moves the order to Cancelled, recording the reason in the notes log.
// Unlike ChangeStatus it reports the two common illegal sources distinctly:
// ErrAlreadyCancelled and ErrAlreadyDelivered. Other illegal sources (Ready,
// Delivering) still surface as InvalidTransitionError.
func (o *Order) Cancel(reason string) error {
	switch o.status {
	case Cancelled:
		return ErrAlreadyCancelled
	case Delivered:
		return ErrAlreadyDelivered
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	if reason != "" {
		o.appendNote("Cancelled: " + reason)
	} else {
		o.appendNote("Order cancelled")
	}
	return nil
}

// appendNote adds a line to the notes log, never overwriting previous entries.
func (o *Order) appendNote(note string) {
	if o.notes == "" {
		o.notes = note
		return
	}
	o.notes = o.notes + "\n" + note
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < minCustomerNameLen || length > maxCustomerNameLen {
		return errs.NewValueIsOutOfRangeError("customerName", length, minCustomerNameLen, maxCustomerNameLen)
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	// Empty string means the customer left no phone.
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("customerPhone",
			fmt.Errorf("%q is not a valid phone number", phone))
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setTableNumber(table *int) error {
	if table == nil {
		return nil
	}
	if *table < MinTableNumber || *table > MaxTableNumber {
		return errs.NewValueIsOutOfRangeError("tableNumber", *table, MinTableNumber, MaxTableNumber)
	}
	o.tableNumber = table
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setEstimatedTime(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedTime",
			fmt.Errorf("%d is not greater than 0", minutes))
	}
	o.estimatedTime = minutes
	return nil
}

func (o *Order) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID == nil {
		return nil
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) < MinItems || len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), MinItems, MaxItems)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setTotalAmount(total kernel.Money) error {
	var sum kernel.Money
	for _, item := range o.items {
		sum = sum.Add(item.TotalPrice())
	}
	if !total.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s does not equal the item total %s", total, sum))
	}
	o.totalAmount = total
	return nil
}
