package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of a seller application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid checks if the ApplicationStatus is a valid value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus converts untrusted input into an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))

	return status, status.IsValid()
}

// SellerApplication is a customer's request to become a seller.
// Approval is the only path that promotes a user to RoleSeller.
type SellerApplication struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"userId"`
	StoreName  string            `json:"storeName"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Note       string            `json:"note,omitempty"`
	Status     ApplicationStatus `json:"status"`
	ReviewedBy *uuid.UUID        `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time        `json:"reviewedAt,omitempty"`
	User       *User             `json:"user,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
