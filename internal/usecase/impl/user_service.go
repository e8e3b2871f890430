package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser returns the account with the given ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers returns one page of accounts with pagination metadata.
func (srv *userService) ListUsers(ctx context.Context, skip, limit int) (*usecase.UserPage, error) {
	skip, limit = normalizePage(skip, limit)

	users, err := srv.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	return &usecase.UserPage{
		Users:    users,
		Total:    total,
		NextSkip: usecase.NextSkip(skip, limit, total),
	}, nil
}

// UpdateSelf applies a user's changes to their own account.
func (srv *userService) UpdateSelf(ctx context.Context, userID uuid.UUID, input *usecase.UpdateSelfInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("email must not be empty")
		}
		user.Email = email
	}

	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.HashedPassword = hashed
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated own account", slog.Any("userID", userID))

	return user, nil
}

// AdminUpdateUser applies moderation changes to any account.
func (srv *userService) AdminUpdateUser(ctx context.Context, id uuid.UUID, input *usecase.AdminUpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("Admin updated user account", slog.Any("userID", id))

	return user, nil
}

// DeleteUser removes an account.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User account deleted", slog.Any("userID", id))

	return nil
}
