// Package productrepo provides read access to the product catalog.
// Orders never write to the catalog; the package only maps catalog rows to
// the product read model used during order intake.
package productrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100)"`
	Price           float64   `gorm:"type:decimal(10,2)"`
	IsActive        bool      `gorm:"index"`
	PreparationTime int       `gorm:"type:smallint"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a catalog row to the product read model.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromFloat(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, price, dto.IsActive, dto.PreparationTime)
}
