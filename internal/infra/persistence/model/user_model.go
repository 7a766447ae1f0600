package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	EmailVerified bool      `gorm:"not null;default:false"`
	Image         string    `gorm:"type:varchar(500)"`
	Phone         string    `gorm:"type:varchar(30)"`
	Role          string    `gorm:"type:varchar(20);not null;default:customer;index"`
	Status        string    `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}
