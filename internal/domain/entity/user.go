// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the storefront. Admin users moderate the
// catalog, receive order notifications and may transition order statuses.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsAdmin        bool      `json:"is_admin"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Roles returns the role claims carried by this user's access tokens.
func (u *User) Roles() []string {
	if u.IsAdmin {
		return []string{RoleAdmin}
	}

	return []string{RoleUser}
}

// Role names used in token claims and route guards.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
