package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status          string          `gorm:"type:varchar(20);not null;default:pending;index"`
	PaymentStatus   string          `gorm:"type:varchar(20);not null;default:unpaid"`
	PaymentMethod   string          `gorm:"type:varchar(30);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	Phone           string          `gorm:"type:varchar(30);not null"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key.
func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}

// OrderItemModel mirrors the 'order_items' table. Name and price are copied at checkout.
type OrderItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MedicineID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	MedicineName string          `gorm:"type:varchar(200);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity     int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the primary key.
func (m *OrderItemModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}
