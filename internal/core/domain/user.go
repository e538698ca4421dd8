package domain

import (
	"errors"
	"time"
)

// Role distinguishes the two actor kinds in the system.
type Role string

const (
	RoleGuest Role = "GUEST"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleGuest || r == RoleAdmin
}

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrAdminUndeletable is returned when a delete targets an ADMIN record.
	// The guard lives here so it holds regardless of the caller.
	ErrAdminUndeletable = errors.New("admin accounts cannot be deleted")
	ErrForbidden        = errors.New("access forbidden")
	ErrUnauthenticated  = errors.New("no authenticated session")
)

// User models a registry entry. ID and Role are immutable after creation;
// registration always produces a GUEST.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	Phone      string    `json:"phone,omitempty"`
	JoinedDate time.Time `json:"joined_date"`
}
