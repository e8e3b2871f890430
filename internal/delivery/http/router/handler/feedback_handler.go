package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for rating and comment handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

type rateProductRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type deleteRatingResponse struct {
	Deleted bool `json:"deleted"`
	Stats   any  `json:"stats"`
}

type commentPageResponse struct {
	Comments any   `json:"comments"`
	Total    int64 `json:"total"`
	NextSkip *int  `json:"next_skip"`
}

// RateProduct upserts the caller's rating and returns the fresh aggregate.
func (h *FeedbackHandler) RateProduct(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req rateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	stats, err := h.uc.RateProduct(c.Request().Context(), productID, userID, req.Rating)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Rating saved successfully")
}

// DeleteRating removes the caller's rating; missing ratings are a no-op.
func (h *FeedbackHandler) DeleteRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	deleted, stats, err := h.uc.DeleteRating(c.Request().Context(), productID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deleteRatingResponse{
		Deleted: deleted,
		Stats:   stats,
	}, "")
}

// GetRatingStats returns the product's live rating aggregate.
func (h *FeedbackHandler) GetRatingStats(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.uc.GetRatingStats(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// GetMyRating returns the caller's own rating for the product.
func (h *FeedbackHandler) GetMyRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.uc.GetMyRating(c.Request().Context(), productID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rating, "")
}

// AddComment attaches a comment to the product.
func (h *FeedbackHandler) AddComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.AddComment(c.Request().Context(), productID, userID, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// ListComments returns one page of the product's comments, newest first.
func (h *FeedbackHandler) ListComments(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	skip, limit := pageParams(c)

	page, err := h.uc.ListComments(c.Request().Context(), productID, skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, commentPageResponse{
		Comments: page.Comments,
		Total:    page.Total,
		NextSkip: page.NextSkip,
	}, "")
}

// DeleteComment removes a comment; only the author or an admin may.
func (h *FeedbackHandler) DeleteComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	commentID, err := pathUUID(c, "cid")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteComment(c.Request().Context(), productID, commentID, userID, isAdmin(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
