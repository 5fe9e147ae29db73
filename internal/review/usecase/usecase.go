package usecase

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/review"
	"github.com/vitrine-app/storefront/internal/review/dto"
)

type reviewUseCase struct {
	repo   review.Repository
	logger *zap.Logger
}

func NewReviewUseCase(repo review.Repository, logger *zap.Logger) review.UseCase {
	return &reviewUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *reviewUseCase) AddComment(ctx context.Context, productID, userID int64, comment string) (*model.Review, error) {
	rev := &model.Review{
		ProductID: productID,
		UserID:    userID,
		Comment:   &comment,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateComment(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (uc *reviewUseCase) ListComments(ctx context.Context, productID int64) ([]model.Review, error) {
	return uc.repo.ListComments(ctx, productID)
}

// DeleteComment is owner-gated: only the author may delete, admins included.
func (uc *reviewUseCase) DeleteComment(ctx context.Context, productID, reviewID, userID int64) error {
	rev, err := uc.repo.FindByID(ctx, productID, reviewID)
	if err != nil {
		return err
	}
	if rev == nil {
		return review.ErrNotFound
	}
	if rev.UserID != userID {
		return review.ErrNotOwner
	}
	return uc.repo.DeleteComment(ctx, rev.ID)
}

// SubmitRating stores the user's single rating for a product. Out-of-range
// values are rejected before any persistence effect; resubmission replaces
// the previous value rather than appending.
func (uc *reviewUseCase) SubmitRating(ctx context.Context, productID, userID int64, rating int) error {
	if rating < 1 || rating > 5 {
		return review.ErrInvalidRating
	}
	return uc.repo.UpsertRating(ctx, productID, userID, rating, time.Now())
}

// GetAggregate reports the mean of all stored ratings for a product rounded
// half-away-from-zero to one decimal place, and the number of rated rows.
// Pure-comment rows never contribute. No ratings yields a null average.
func (uc *reviewUseCase) GetAggregate(ctx context.Context, productID int64) (*dto.RatingAggregate, error) {
	ratings, err := uc.repo.RatingsForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return &dto.RatingAggregate{Average: nil, Count: 0}, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10

	return &dto.RatingAggregate{Average: &avg, Count: len(ratings)}, nil
}
