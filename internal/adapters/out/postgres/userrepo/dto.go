// Package userrepo holds the database mapping for user accounts.
// Account management lives in a separate service; this schema exists locally
// so migrations can create the table the order read side joins against.
package userrepo

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO represents the database structure of a user account.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}
