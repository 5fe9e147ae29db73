package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/auth"
	"github.com/vitrine-app/storefront/internal/httpserver/respond"
	"github.com/vitrine-app/storefront/internal/review"
	"github.com/vitrine-app/storefront/internal/review/dto"
	"github.com/vitrine-app/storefront/internal/validation"
)

type ReviewHandler struct {
	uc     review.UseCase
	logger *zap.Logger
}

func NewReviewHandler(uc review.UseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// ListComments handles GET /products/{id}/reviews.
func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.uc.ListComments(r.Context(), productID)
	if err != nil {
		h.logger.Error("failed to list comments", zap.Int64("product_id", productID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list comments")
		return
	}

	views := make([]dto.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, dto.NewCommentView(&comments[i]))
	}
	respond.JSON(w, http.StatusOK, views)
}

// AddComment handles POST /products/{id}/reviews. Identity comes from the
// bearer token, never from the request body.
func (h *ReviewHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var input dto.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.uc.AddComment(r.Context(), productID, userID, input.Comment); err != nil {
		h.logger.Error("failed to add comment", zap.Int64("product_id", productID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not add comment")
		return
	}

	respond.Message(w, http.StatusCreated, "comment added")
}

// DeleteComment handles DELETE /products/{id}/reviews/{review_id}.
func (h *ReviewHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	reviewID, ok := pathID(w, r, "review_id")
	if !ok {
		return
	}
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	err := h.uc.DeleteComment(r.Context(), productID, reviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "comment not found")
		case errors.Is(err, review.ErrNotOwner):
			respond.Error(w, http.StatusForbidden, "not allowed to delete this comment")
		default:
			h.logger.Error("failed to delete comment", zap.Int64("review_id", reviewID), zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "could not delete comment")
		}
		return
	}

	respond.Message(w, http.StatusOK, "comment deleted")
}

// SubmitRating handles POST /products/{id}/rating.
func (h *ReviewHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var input dto.RatingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "rating must be an integer between 1 and 5")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.uc.SubmitRating(r.Context(), productID, userID, *input.Rating); err != nil {
		if errors.Is(err, review.ErrInvalidRating) {
			respond.Error(w, http.StatusBadRequest, "rating must be between 1 and 5")
			return
		}
		h.logger.Error("failed to submit rating", zap.Int64("product_id", productID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not submit rating")
		return
	}

	respond.Message(w, http.StatusOK, "rating recorded")
}

// GetAggregate handles GET /products/{id}/rating.
func (h *ReviewHandler) GetAggregate(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	agg, err := h.uc.GetAggregate(r.Context(), productID)
	if err != nil {
		h.logger.Error("failed to aggregate ratings", zap.Int64("product_id", productID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not compute rating")
		return
	}

	respond.JSON(w, http.StatusOK, agg)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
