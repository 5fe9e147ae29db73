package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/auth"
	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/review"
	"github.com/vitrine-app/storefront/internal/review/dto"
)

type fakeUseCase struct {
	submitted    []int
	deleteErr    error
	aggregate    *dto.RatingAggregate
	comments     []model.Review
	addCommentFn func(productID, userID int64, comment string)
}

func (f *fakeUseCase) AddComment(_ context.Context, productID, userID int64, comment string) (*model.Review, error) {
	if f.addCommentFn != nil {
		f.addCommentFn(productID, userID, comment)
	}
	return &model.Review{ID: 1, ProductID: productID, UserID: userID, Comment: &comment}, nil
}

func (f *fakeUseCase) ListComments(_ context.Context, _ int64) ([]model.Review, error) {
	return f.comments, nil
}

func (f *fakeUseCase) DeleteComment(_ context.Context, _, _, _ int64) error {
	return f.deleteErr
}

func (f *fakeUseCase) SubmitRating(_ context.Context, _, _ int64, rating int) error {
	if rating < 1 || rating > 5 {
		return review.ErrInvalidRating
	}
	f.submitted = append(f.submitted, rating)
	return nil
}

func (f *fakeUseCase) GetAggregate(_ context.Context, _ int64) (*dto.RatingAggregate, error) {
	if f.aggregate != nil {
		return f.aggregate, nil
	}
	return &dto.RatingAggregate{Average: nil, Count: 0}, nil
}

// withUser simulates the auth middleware by injecting a user id directly.
func withUser(userID int64, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	}
}

func newTestRouter(uc review.UseCase, userID int64) http.Handler {
	h := NewReviewHandler(uc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/products/{id}/reviews", h.ListComments)
	r.Get("/products/{id}/rating", h.GetAggregate)
	if userID > 0 {
		r.Post("/products/{id}/reviews", withUser(userID, h.AddComment))
		r.Post("/products/{id}/rating", withUser(userID, h.SubmitRating))
		r.Delete("/products/{id}/reviews/{review_id}", withUser(userID, h.DeleteComment))
	} else {
		r.Post("/products/{id}/reviews", h.AddComment)
		r.Post("/products/{id}/rating", h.SubmitRating)
		r.Delete("/products/{id}/reviews/{review_id}", h.DeleteComment)
	}
	return r
}

func TestSubmitRatingOK(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc, 1)

	req := httptest.NewRequest(http.MethodPost, "/products/1/rating", strings.NewReader(`{"rating": 4}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{4}, uc.submitted)
}

func TestSubmitRatingRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"out of range low", `{"rating": 0}`},
		{"out of range high", `{"rating": 6}`},
		{"null rating", `{"rating": null}`},
		{"missing rating", `{}`},
		{"non-integer rating", `{"rating": 4.5}`},
		{"string rating", `{"rating": "four"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			router := newTestRouter(uc, 1)

			req := httptest.NewRequest(http.MethodPost, "/products/1/rating", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, uc.submitted, "rejected submission must have no side effect")
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestSubmitRatingUnauthenticated(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, 0)

	req := httptest.NewRequest(http.MethodPost, "/products/1/rating", strings.NewReader(`{"rating": 4}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAggregateEmptyProduct(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, 0)

	req := httptest.NewRequest(http.MethodGet, "/products/1/rating", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"average": null, "count": 0}`, rec.Body.String())
}

func TestGetAggregateWithRatings(t *testing.T) {
	avg := 4.5
	router := newTestRouter(&fakeUseCase{aggregate: &dto.RatingAggregate{Average: &avg, Count: 2}}, 0)

	req := httptest.NewRequest(http.MethodGet, "/products/1/rating", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"average": 4.5, "count": 2}`, rec.Body.String())
}

func TestAddCommentUsesTokenIdentity(t *testing.T) {
	var gotUserID int64
	uc := &fakeUseCase{addCommentFn: func(_, userID int64, _ string) { gotUserID = userID }}
	router := newTestRouter(uc, 7)

	// user_id in the body must be ignored in favor of the token identity.
	body := `{"comment": "nice", "user_id": 999}`
	req := httptest.NewRequest(http.MethodPost, "/products/1/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
}

func TestAddCommentRequiresComment(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, 1)

	req := httptest.NewRequest(http.MethodPost, "/products/1/reviews", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCommentStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"owner delete succeeds", nil, http.StatusOK},
		{"non-owner forbidden", review.ErrNotOwner, http.StatusForbidden},
		{"missing comment", review.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{deleteErr: tt.err}, 1)

			req := httptest.NewRequest(http.MethodDelete, "/products/1/reviews/2", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestListCommentsProjection(t *testing.T) {
	comment := "great"
	uc := &fakeUseCase{comments: []model.Review{
		{ID: 1, ProductID: 1, UserID: 2, Comment: &comment, Author: "Ana"},
	}}
	router := newTestRouter(uc, 0)

	req := httptest.NewRequest(http.MethodGet, "/products/1/reviews", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_name":"Ana"`)
	assert.Contains(t, rec.Body.String(), `"comment":"great"`)
}
