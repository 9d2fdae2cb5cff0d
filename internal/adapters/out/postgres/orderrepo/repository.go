package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	orderNumberPrefix = "ORD"

	// maxNumberAttempts bounds the collision retry in Add. The generated
	// number space makes a third collision in a row vanishingly unlikely;
	// running out signals something is wrong with the clock or the table.
	maxNumberAttempts = 3
)

// ErrOrderNumberExhausted is returned when every generated order number
// collided with an existing one.
var ErrOrderNumberExhausted = errors.New("could not generate a unique order number")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker

	// generateNumber produces candidate order numbers for Add.
	// Replaceable in tests to force collisions.
	generateNumber func() string
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,

		generateNumber: generateOrderNumber,
	}
}

// SetNumberGenerator replaces the order number source. Tests use it to force
// collisions deterministically; production code keeps the default generator.
func (r *GormOrderRepository) SetNumberGenerator(generate func() string) {
	r.generateNumber = generate
}

// generateOrderNumber builds a candidate number from the last six digits of
// the current time in milliseconds plus three random digits. Uniqueness is
// enforced by the database, not by the generator.
func generateOrderNumber() string {
	return fmt.Sprintf("%s%06d%03d", orderNumberPrefix, time.Now().UnixMilli()%1000000, rand.Intn(1000)) //nolint:gosec //not used for security
}

// Add saves a new order and all of its items atomically, assigning the
// human-readable order number.
//
// Each insert attempt runs in a nested transaction so a unique-index
// collision on the order number aborts only the attempt, not the caller's
// surrounding transaction. Requires the connection to be opened with
// TranslateError so collisions surface as gorm.ErrDuplicatedKey.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number := r.generateNumber()
		dto.OrderNumber = number

		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&dto).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}

		if err = aggregate.AssignOrderNumber(number); err != nil {
			return err
		}

		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		return nil
	}

	return ErrOrderNumberExhausted
}

// Update saves lifecycle changes of an existing order. Items are immutable
// after creation and are not touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "notes": dto.Notes})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID together with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStalePending retrieves all orders still pending since before the cutoff.
func (r *GormOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Find(&dtos, "status = ? AND created_at < ?", order.Pending.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
