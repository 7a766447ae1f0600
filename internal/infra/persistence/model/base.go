// Package model holds the GORM persistence models. They are mapped to and from
// domain entities by the repositories and never leave the infra layer.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID fills an empty primary key. IDs are generated in Go so that every
// supported dialect behaves the same way.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every model for schema migration, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&MedicineModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ReviewModel{},
		&SellerApplicationModel{},
	}
}

// AutoMigrate creates or updates the tables of every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
