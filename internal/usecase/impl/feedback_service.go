package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxCommentLength = 2000

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RateProduct upserts the caller's rating and recomputes the product's
// cached average inside the same transaction, so the denormalized value
// always reflects a committed set of ratings.
func (srv *feedbackService) RateProduct(ctx context.Context, productID, userID uuid.UUID, rating int) (*entity.RatingStats, error) {
	if rating < 1 || rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	var stats *entity.RatingStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory.ProductRepo(), productID); err != nil {
			return err
		}

		feedbackRepo := repoFactory.FeedbackRepo()
		if err := feedbackRepo.UpsertRating(ctx, &entity.ProductRating{
			ProductID: productID,
			UserID:    userID,
			Rating:    rating,
		}); err != nil {
			return errors.Wrap(err, "failed to upsert rating")
		}

		return srv.refreshCachedRating(ctx, repoFactory, productID, &stats)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Product rated",
		slog.Any("productID", productID), slog.Int("rating", rating))

	return stats, nil
}

// DeleteRating removes the caller's rating, if any, and recomputes the
// cached average. A missing rating is not an error.
func (srv *feedbackService) DeleteRating(ctx context.Context, productID, userID uuid.UUID) (bool, *entity.RatingStats, error) {
	var deleted bool
	var stats *entity.RatingStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireProduct(ctx, repoFactory.ProductRepo(), productID); err != nil {
			return err
		}

		var err error
		deleted, err = repoFactory.FeedbackRepo().DeleteRating(ctx, productID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to delete rating")
		}

		return srv.refreshCachedRating(ctx, repoFactory, productID, &stats)
	})
	if err != nil {
		return false, nil, err
	}

	return deleted, stats, nil
}

// GetRatingStats returns the live (average, count) aggregate.
func (srv *feedbackService) GetRatingStats(ctx context.Context, productID uuid.UUID) (*entity.RatingStats, error) {
	if err := srv.requireProduct(ctx, srv.productRepo, productID); err != nil {
		return nil, err
	}

	stats, err := srv.feedbackRepo.RatingStats(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute rating stats")
	}

	return stats, nil
}

// GetMyRating returns the caller's rating for the product.
func (srv *feedbackService) GetMyRating(ctx context.Context, productID, userID uuid.UUID) (*entity.ProductRating, error) {
	if err := srv.requireProduct(ctx, srv.productRepo, productID); err != nil {
		return nil, err
	}

	rating, err := srv.feedbackRepo.FindRating(ctx, productID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("you have not rated this product")
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return rating, nil
}

// AddComment attaches trimmed, bounded comment text to a product.
func (srv *feedbackService) AddComment(ctx context.Context, productID, userID uuid.UUID, text string) (*entity.ProductComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment text must not be empty")
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment text is too long")
	}

	if err := srv.requireProduct(ctx, srv.productRepo, productID); err != nil {
		return nil, err
	}

	comment := &entity.ProductComment{
		ProductID: productID,
		UserID:    userID,
		Text:      text,
	}
	if err := srv.feedbackRepo.CreateComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListComments returns one page of a product's comments, newest first.
func (srv *feedbackService) ListComments(ctx context.Context, productID uuid.UUID, skip, limit int) (*usecase.CommentPage, error) {
	if err := srv.requireProduct(ctx, srv.productRepo, productID); err != nil {
		return nil, err
	}

	skip, limit = normalizePage(skip, limit)

	comments, err := srv.feedbackRepo.ListComments(ctx, productID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	total, err := srv.feedbackRepo.CountComments(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count comments")
	}

	return &usecase.CommentPage{
		Comments: comments,
		Total:    total,
		NextSkip: usecase.NextSkip(skip, limit, total),
	}, nil
}

// DeleteComment removes a comment. Only the author or an admin may; a
// foreign caller gets Forbidden, which is deliberately distinct from the
// NotFound a missing comment produces.
func (srv *feedbackService) DeleteComment(ctx context.Context, productID, commentID, requesterID uuid.UUID, isAdmin bool) error {
	comment, err := srv.feedbackRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("comment not found")
		}

		return errors.Wrap(err, "failed to find comment")
	}

	if comment.ProductID != productID {
		return domainerrors.ErrNotFound.WrapMessage("comment not found")
	}

	if !isAdmin && comment.UserID != requesterID {
		return domainerrors.ErrForbidden.WrapMessage("only the author or an admin may delete a comment")
	}

	if err := srv.feedbackRepo.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("comment not found")
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted",
		slog.Any("commentID", commentID), slog.Any("requesterID", requesterID))

	return nil
}

func (srv *feedbackService) requireProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) error {
	if _, err := productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	return nil
}

func (srv *feedbackService) refreshCachedRating(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID, out **entity.RatingStats) error {
	stats, err := repoFactory.FeedbackRepo().RatingStats(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to compute rating stats")
	}

	if err := repoFactory.ProductRepo().SetRating(ctx, productID, stats.Average); err != nil {
		return errors.Wrap(err, "failed to store cached rating")
	}

	*out = stats

	return nil
}
