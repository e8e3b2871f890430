package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSelfInput defines the fields a user may change on their own
// account. Nil fields are left untouched.
type UpdateSelfInput struct {
	Email    *string
	Password *string
}

// AdminUpdateUserInput defines the fields an admin may change on any
// account. Nil fields are left untouched.
type AdminUpdateUserInput struct {
	IsActive *bool
	IsAdmin  *bool
}

// UserPage is one page of users plus pagination metadata.
type UserPage struct {
	Users    []*entity.User
	Total    int64
	NextSkip *int
}

// UserUsecase defines the interface for user account business operations.
type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, skip, limit int) (*UserPage, error)
	UpdateSelf(ctx context.Context, userID uuid.UUID, input *UpdateSelfInput) (*entity.User, error)
	AdminUpdateUser(ctx context.Context, id uuid.UUID, input *AdminUpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
