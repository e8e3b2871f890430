package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	userService := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   logger,
	})

	return userService, userRepo, hasher
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userService, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := userService.GetUser(ctx, id)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_Pagination(t *testing.T) {
	userService, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	userRepo.EXPECT().List(ctx, 0, 2).Return(users, nil)
	userRepo.EXPECT().Count(ctx).Return(int64(5), nil)

	page, err := userService.ListUsers(ctx, 0, 2)

	require.NoError(t, err)
	assert.Len(t, page.Users, 2)
	assert.Equal(t, int64(5), page.Total)
	require.NotNil(t, page.NextSkip)
	assert.Equal(t, 2, *page.NextSkip)
}

func TestUserService_ListUsers_LastPageHasNoNextSkip(t *testing.T) {
	userService, userRepo, _ := createTestUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().List(ctx, 4, 2).Return([]*entity.User{{ID: uuid.New()}}, nil)
	userRepo.EXPECT().Count(ctx).Return(int64(5), nil)

	page, err := userService.ListUsers(ctx, 4, 2)

	require.NoError(t, err)
	assert.Nil(t, page.NextSkip)
}

func TestUserService_UpdateSelf_ChangesEmailAndPassword(t *testing.T) {
	userService, userRepo, hasher := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	email := " New@Example.com "
	password := "new-password"

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "old@example.com"}, nil)
	hasher.EXPECT().Hash(password).Return("new-hash", nil)
	userRepo.EXPECT().Update(ctx, mock.Anything).Run(func(_ context.Context, user *entity.User) {
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "new-hash", user.HashedPassword)
	}).Return(nil)

	user, err := userService.UpdateSelf(ctx, userID, &usecase.UpdateSelfInput{
		Email:    &email,
		Password: &password,
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserService_UpdateSelf_DuplicateEmail(t *testing.T) {
	userService, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	email := "taken@example.com"

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	userRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	user, err := userService.UpdateSelf(ctx, userID, &usecase.UpdateSelfInput{Email: &email})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestUserService_AdminUpdateUser_TogglesFlags(t *testing.T) {
	userService, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	inactive := false
	admin := true

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true}, nil)
	userRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	user, err := userService.AdminUpdateUser(ctx, userID, &usecase.AdminUpdateUserInput{
		IsActive: &inactive,
		IsAdmin:  &admin,
	})

	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.True(t, user.IsAdmin)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	userService, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	userRepo.EXPECT().Delete(ctx, id).Return(repository.ErrUserNotFound)

	err := userService.DeleteUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
