package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerApplicationModel mirrors the 'seller_applications' table.
type SellerApplicationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_seller_applications_user_status"`
	StoreName  string     `gorm:"type:varchar(150);not null"`
	Phone      string     `gorm:"type:varchar(30);not null"`
	Address    string     `gorm:"type:text;not null"`
	Note       string     `gorm:"type:text"`
	Status     string     `gorm:"type:varchar(20);not null;default:pending;index:idx_seller_applications_user_status"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (SellerApplicationModel) TableName() string {
	return "seller_applications"
}

// BeforeCreate assigns the primary key.
func (m *SellerApplicationModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}
