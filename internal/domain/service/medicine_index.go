package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"zenvira/internal/domain/entity"
)

// ErrSearchUnavailable is returned by a MedicineIndex that cannot serve queries,
// telling callers to fall back to the relational store.
var ErrSearchUnavailable = errors.New("search index unavailable")

// MedicineIndex is a full-text index over the catalogue.
type MedicineIndex interface {
	// Index inserts or replaces the document of a medicine.
	Index(ctx context.Context, medicine *entity.Medicine) error

	// Remove deletes the document of a medicine.
	Remove(ctx context.Context, id uuid.UUID) error

	// Search returns the ids of active medicines matching the free-text query, best match first.
	Search(ctx context.Context, query string, limit int) ([]uuid.UUID, error)
}
