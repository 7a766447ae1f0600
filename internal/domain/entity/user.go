// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Accounts are created by the identity provider on sign-up
// and their role changes only through an admin or an approved seller application.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"emailVerified"`
	Image         string     `json:"image,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Role          Role       `json:"role"`
	Status        UserStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Principal is the authenticated identity attached to a request.
// It is built once by the authorization layer and only read afterwards.
type Principal struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  Role      `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// HasRole reports whether the principal's role is one of the allowed roles.
func (p *Principal) HasRole(allowed ...Role) bool {
	if p == nil {
		return false
	}

	return Roles(allowed).Contains(p.Role)
}

// PrincipalFromUser projects a user onto the request principal.
func PrincipalFromUser(u *User) *Principal {
	return &Principal{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// UserFilter narrows the admin user listing. Nil fields are not applied.
type UserFilter struct {
	Role   *Role
	Status *UserStatus
	Search string
	Page   int
	Limit  int
}
