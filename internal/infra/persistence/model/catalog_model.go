package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BeforeCreate assigns the primary key.
func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}

// MedicineModel mirrors the 'medicines' table.
type MedicineModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"type:varchar(200);not null"`
	Slug                 string          `gorm:"type:varchar(220);uniqueIndex;not null"`
	Description          string          `gorm:"type:text"`
	Manufacturer         string          `gorm:"type:varchar(200)"`
	Price                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock                int             `gorm:"not null;default:0"`
	Image                string          `gorm:"type:varchar(500)"`
	RequiresPrescription bool            `gorm:"not null;default:false"`
	Status               string          `gorm:"type:varchar(20);not null;default:active;index"`
	CategoryID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}

// BeforeCreate assigns the primary key.
func (m *MedicineModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}

// ReviewModel mirrors the 'reviews' table. A user reviews a medicine at most once.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_medicine"`
	MedicineID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_medicine;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// BeforeCreate assigns the primary key.
func (m *ReviewModel) BeforeCreate(*gorm.DB) error {
	newID(&m.ID)

	return nil
}
