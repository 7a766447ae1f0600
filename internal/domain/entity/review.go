package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a medicine. A user reviews a medicine at most once.
type Review struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	MedicineID uuid.UUID `json:"medicineId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsValidRating reports whether rating lies in [MinRating, MaxRating].
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
