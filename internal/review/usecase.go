package review

import (
	"context"
	"errors"

	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/review/dto"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrNotFound      = errors.New("review not found")
	ErrNotOwner      = errors.New("not allowed to delete this review")
)

type UseCase interface {
	AddComment(ctx context.Context, productID, userID int64, comment string) (*model.Review, error)
	ListComments(ctx context.Context, productID int64) ([]model.Review, error)
	DeleteComment(ctx context.Context, productID, reviewID, userID int64) error

	SubmitRating(ctx context.Context, productID, userID int64, rating int) error
	GetAggregate(ctx context.Context, productID int64) (*dto.RatingAggregate, error)
}
