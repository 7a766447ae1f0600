package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicineStatus gates storefront visibility of a medicine.
type MedicineStatus string

const (
	MedicineStatusActive   MedicineStatus = "active"
	MedicineStatusInactive MedicineStatus = "inactive"
)

// IsValid checks if the MedicineStatus is a valid value.
func (s MedicineStatus) IsValid() bool {
	return s == MedicineStatusActive || s == MedicineStatusInactive
}

// Medicine is a product listed by a seller under exactly one category.
type Medicine struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Slug                 string          `json:"slug"`
	Description          string          `json:"description,omitempty"`
	Manufacturer         string          `json:"manufacturer,omitempty"`
	Price                decimal.Decimal `json:"price"`
	Stock                int             `json:"stock"`
	Image                string          `json:"image,omitempty"`
	RequiresPrescription bool            `json:"requiresPrescription"`
	Status               MedicineStatus  `json:"status"`
	CategoryID           uuid.UUID       `json:"categoryId"`
	SellerID             uuid.UUID       `json:"sellerId"`
	Category             *Category       `json:"category,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// IsOwnedBy reports whether the medicine was listed by the given seller.
func (m *Medicine) IsOwnedBy(sellerID uuid.UUID) bool {
	return m.SellerID == sellerID
}

// MedicineSort selects the ordering of a medicine listing.
type MedicineSort string

const (
	MedicineSortNewest    MedicineSort = "newest"
	MedicineSortPriceAsc  MedicineSort = "price_asc"
	MedicineSortPriceDesc MedicineSort = "price_desc"
	MedicineSortName      MedicineSort = "name"
)

// ParseMedicineSort falls back to newest-first for unknown input.
func ParseMedicineSort(s string) MedicineSort {
	switch sort := MedicineSort(strings.ToLower(strings.TrimSpace(s))); sort {
	case MedicineSortPriceAsc, MedicineSortPriceDesc, MedicineSortName:
		return sort
	default:
		return MedicineSortNewest
	}
}

// MedicineFilter narrows a medicine listing. Zero values are not applied.
type MedicineFilter struct {
	Search       string
	CategorySlug string
	SellerID     *uuid.UUID
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Status       *MedicineStatus
	// IDs restricts the listing to a pre-computed candidate set, e.g. search index hits.
	IDs   []uuid.UUID
	Sort  MedicineSort
	Page  int
	Limit int
}
