package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	authService := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authService, userRepo, hasher, tokenService
}

func TestAuthService_Register_Success(t *testing.T) {
	authService, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret-password").Return("hashed", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything).Run(func(_ context.Context, user *entity.User) {
		assert.Equal(t, "buyer@example.com", user.Email)
		assert.Equal(t, "hashed", user.HashedPassword)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsAdmin)
		user.ID = uuid.New()
	}).Return(nil)

	output, err := authService.Register(ctx, &usecase.RegisterInput{
		Email:    "  Buyer@Example.com ",
		Password: "secret-password",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "buyer@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret-password").Return("hashed", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	output, err := authService.Register(ctx, &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Password: "secret-password",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, userRepo, hasher, tokenService := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "buyer@example.com",
		HashedPassword: "hashed",
		IsActive:       true,
	}

	userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret-password", "hashed").Return(true)
	tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).Return("access", "refresh", nil)

	output, err := authService.Login(ctx, &usecase.LoginInput{
		Email:    "Buyer@Example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	authService, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, unknownErr := authService.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com", HashedPassword: "hashed", IsActive: true}
	userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, wrongErr := authService.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "wrong"})

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	authService, userRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "old@example.com", HashedPassword: "hashed", IsActive: false}

	userRepo.EXPECT().FindByEmail(ctx, "old@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret-password", "hashed").Return(true)

	output, err := authService.Login(ctx, &usecase.LoginInput{Email: "old@example.com", Password: "secret-password"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	authService, userRepo, _, tokenService := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true, IsActive: true}

	tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{
		UserID:           user.ID,
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}, nil)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	// Roles come from storage, not from the presented token.
	tokenService.EXPECT().GenerateTokens(user.ID, []string{"admin"}).Return("new-access", "new-refresh", nil)

	output, err := authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	authService, _, _, tokenService := createTestAuthService(t)

	tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := authService.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_DeactivatedUser(t *testing.T) {
	authService, userRepo, _, tokenService := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)

	output, err := authService.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
