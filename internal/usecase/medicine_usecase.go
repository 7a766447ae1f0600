package usecase

import (
	"context"

	"zenvira/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListMedicinesInput holds the public catalogue filters.
type ListMedicinesInput struct {
	Search       string
	CategorySlug string
	SellerID     *uuid.UUID
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         entity.MedicineSort
	Page         int
	Limit        int
}

// CreateMedicineInput defines a new listing. An empty slug is derived from the name
// and an empty status defaults to active.
type CreateMedicineInput struct {
	Name                 string
	Slug                 string
	Description          string
	Manufacturer         string
	Price                decimal.Decimal
	Stock                int
	Image                string
	RequiresPrescription bool
	Status               entity.MedicineStatus
	CategoryID           uuid.UUID
}

// UpdateMedicineInput holds the fields to change; nil fields are left as they are.
type UpdateMedicineInput struct {
	Name                 *string
	Slug                 *string
	Description          *string
	Manufacturer         *string
	Price                *decimal.Decimal
	Stock                *int
	Image                *string
	RequiresPrescription *bool
	Status               *entity.MedicineStatus
	CategoryID           *uuid.UUID
}

// MedicineUsecase defines the product catalogue operations.
type MedicineUsecase interface {
	List(ctx context.Context, input *ListMedicinesInput) (*entity.Page[*entity.Medicine], error)
	GetBySlug(ctx context.Context, slug string) (*entity.Medicine, error)
	ListBySeller(ctx context.Context, principal *entity.Principal, page, limit int) (*entity.Page[*entity.Medicine], error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateMedicineInput) (*entity.Medicine, error)
	Update(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *UpdateMedicineInput) (*entity.Medicine, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
}
