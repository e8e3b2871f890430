package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFeedbackService(t *testing.T) (
	usecase.FeedbackUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockProductRepository,
	*mockRepo.MockFeedbackRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	feedbackService := NewFeedbackService(FeedbackServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		FeedbackRepo: feedbackRepo,
		Logger:       logger,
	})

	return feedbackService, txManager, productRepo, feedbackRepo
}

func TestFeedbackService_RateProduct_UpsertsAndRecomputes(t *testing.T) {
	feedbackService, txManager, _, _ := createTestFeedbackService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txFeedbackRepo := mockRepo.NewMockFeedbackRepository(t)

	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	factory.EXPECT().FeedbackRepo().Return(txFeedbackRepo)

	txProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	txFeedbackRepo.EXPECT().UpsertRating(ctx, mock.Anything).Run(func(_ context.Context, rating *entity.ProductRating) {
		assert.Equal(t, productID, rating.ProductID)
		assert.Equal(t, userID, rating.UserID)
		assert.Equal(t, 4, rating.Rating)
	}).Return(nil)
	txFeedbackRepo.EXPECT().RatingStats(ctx, productID).Return(&entity.RatingStats{Average: 4.25, Count: 4}, nil)
	txProductRepo.EXPECT().SetRating(ctx, productID, 4.25).Return(nil)

	stats, err := feedbackService.RateProduct(ctx, productID, userID, 4)

	require.NoError(t, err)
	assert.Equal(t, 4.25, stats.Average)
	assert.Equal(t, int64(4), stats.Count)
}

func TestFeedbackService_RateProduct_OutOfRange(t *testing.T) {
	feedbackService, _, _, _ := createTestFeedbackService(t)

	ctx := context.Background()

	_, err := feedbackService.RateProduct(ctx, uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = feedbackService.RateProduct(ctx, uuid.New(), uuid.New(), 6)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFeedbackService_DeleteRating_MissingRatingIsNotAnError(t *testing.T) {
	feedbackService, txManager, _, _ := createTestFeedbackService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	txFeedbackRepo := mockRepo.NewMockFeedbackRepository(t)

	passthroughTx(txManager, ctx, factory)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	factory.EXPECT().FeedbackRepo().Return(txFeedbackRepo)

	txProductRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	txFeedbackRepo.EXPECT().DeleteRating(ctx, productID, userID).Return(false, nil)
	txFeedbackRepo.EXPECT().RatingStats(ctx, productID).Return(&entity.RatingStats{}, nil)
	txProductRepo.EXPECT().SetRating(ctx, productID, 0.0).Return(nil)

	deleted, stats, err := feedbackService.DeleteRating(ctx, productID, userID)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, int64(0), stats.Count)
}

func TestFeedbackService_GetMyRating_NotRated(t *testing.T) {
	feedbackService, _, productRepo, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	feedbackRepo.EXPECT().FindRating(ctx, productID, userID).Return(nil, repository.ErrRatingNotFound)

	rating, err := feedbackService.GetMyRating(ctx, productID, userID)

	assert.Nil(t, rating)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFeedbackService_AddComment_TrimsAndBounds(t *testing.T) {
	feedbackService, _, productRepo, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	feedbackRepo.EXPECT().CreateComment(ctx, mock.Anything).Run(func(_ context.Context, comment *entity.ProductComment) {
		assert.Equal(t, "great coffee", comment.Text)
	}).Return(nil)

	comment, err := feedbackService.AddComment(ctx, productID, userID, "  great coffee  ")

	require.NoError(t, err)
	assert.Equal(t, "great coffee", comment.Text)
}

func TestFeedbackService_AddComment_Invalid(t *testing.T) {
	feedbackService, _, _, _ := createTestFeedbackService(t)

	ctx := context.Background()

	_, err := feedbackService.AddComment(ctx, uuid.New(), uuid.New(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = feedbackService.AddComment(ctx, uuid.New(), uuid.New(), strings.Repeat("a", maxCommentLength+1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFeedbackService_DeleteComment_AuthorOrAdminOnly(t *testing.T) {
	feedbackService, _, _, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	productID := uuid.New()
	commentID := uuid.New()
	authorID := uuid.New()
	strangerID := uuid.New()

	comment := &entity.ProductComment{ID: commentID, ProductID: productID, UserID: authorID}

	feedbackRepo.EXPECT().FindCommentByID(ctx, commentID).Return(comment, nil)
	err := feedbackService.DeleteComment(ctx, productID, commentID, strangerID, false)
	// A foreign caller gets Forbidden, distinct from the NotFound of a missing comment.
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	feedbackRepo.EXPECT().FindCommentByID(ctx, commentID).Return(comment, nil)
	feedbackRepo.EXPECT().DeleteComment(ctx, commentID).Return(nil)
	err = feedbackService.DeleteComment(ctx, productID, commentID, strangerID, true)
	assert.NoError(t, err)
}

func TestFeedbackService_DeleteComment_WrongProductLooksMissing(t *testing.T) {
	feedbackService, _, _, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	commentID := uuid.New()
	authorID := uuid.New()

	feedbackRepo.EXPECT().FindCommentByID(ctx, commentID).Return(
		&entity.ProductComment{ID: commentID, ProductID: uuid.New(), UserID: authorID}, nil)

	err := feedbackService.DeleteComment(ctx, uuid.New(), commentID, authorID, false)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestFeedbackService_ListComments_Pagination(t *testing.T) {
	feedbackService, _, productRepo, feedbackRepo := createTestFeedbackService(t)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	feedbackRepo.EXPECT().ListComments(ctx, productID, 0, 20).Return([]*entity.ProductComment{{ID: uuid.New()}}, nil)
	feedbackRepo.EXPECT().CountComments(ctx, productID).Return(int64(1), nil)

	page, err := feedbackService.ListComments(ctx, productID, 0, 0)

	require.NoError(t, err)
	assert.Len(t, page.Comments, 1)
	assert.Nil(t, page.NextSkip)
}
