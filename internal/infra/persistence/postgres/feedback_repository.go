package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// feedbackRepository implements the repository.FeedbackRepository interface using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// FindRating retrieves the rating a user gave a product.
func (repo *feedbackRepository) FindRating(ctx context.Context, productID, userID uuid.UUID) (*entity.ProductRating, error) {
	var ratingM model.ProductRatingModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// UpsertRating inserts the rating or updates it in place. The ON CONFLICT
// clause rides on the (product_id, user_id) unique index, so two concurrent
// writers for the same pair serialize at the database instead of erroring.
func (repo *feedbackRepository) UpsertRating(ctx context.Context, rating *entity.ProductRating) error {
	ratingM := &model.ProductRatingModel{
		ProductID: rating.ProductID,
		UserID:    rating.UserID,
		Rating:    rating.Rating,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// DeleteRating removes a user's rating. Returns false when none existed.
func (repo *feedbackRepository) DeleteRating(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Delete(&model.ProductRatingModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rating")
	}

	return result.RowsAffected > 0, nil
}

// RatingStats computes (average, count) live from the rating rows.
// COALESCE keeps the average at 0 for products with no ratings.
func (repo *feedbackRepository) RatingStats(ctx context.Context, productID uuid.UUID) (*entity.RatingStats, error) {
	var stats entity.RatingStats
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductRatingModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute rating stats")
	}

	return &stats, nil
}

// CreateComment persists a new comment.
func (repo *feedbackRepository) CreateComment(ctx context.Context, comment *entity.ProductComment) error {
	commentM := &model.ProductCommentModel{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		Text:      comment.Text,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// FindCommentByID retrieves a comment by its unique ID.
func (repo *feedbackRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.ProductComment, error) {
	var commentM model.ProductCommentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListComments retrieves a product's comments newest first, with pagination.
func (repo *feedbackRepository) ListComments(ctx context.Context, productID uuid.UUID, skip, limit int) ([]*entity.ProductComment, error) {
	var models []model.ProductCommentModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.ProductComment, 0, len(models))
	for i := range models {
		comments = append(comments, toCommentDomain(&models[i]))
	}

	return comments, nil
}

// CountComments returns the number of comments on a product.
func (repo *feedbackRepository) CountComments(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductCommentModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count comments")
	}

	return count, nil
}

// DeleteComment removes a comment.
func (repo *feedbackRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductCommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.ProductRatingModel) *entity.ProductRating {
	if data == nil {
		return nil
	}

	return &entity.ProductRating{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCommentDomain(data *model.ProductCommentModel) *entity.ProductComment {
	if data == nil {
		return nil
	}

	return &entity.ProductComment{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}
