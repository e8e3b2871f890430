// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a unique email constraint is violated.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, the login identifier.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves users with pagination.
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// ListAdmins retrieves every user with the admin flag set.
	// Used by the order notification fan-out.
	ListAdmins(ctx context.Context) ([]*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user; dependent rows cascade via FK policy.
	Delete(ctx context.Context, id uuid.UUID) error
}
