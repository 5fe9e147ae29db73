package review

import (
	"context"
	"time"

	"github.com/vitrine-app/storefront/internal/model"
)

type Repository interface {
	CreateComment(ctx context.Context, review *model.Review) error
	ListComments(ctx context.Context, productID int64) ([]model.Review, error)
	FindByID(ctx context.Context, productID, reviewID int64) (*model.Review, error)
	DeleteComment(ctx context.Context, id int64) error

	// UpsertRating sets the user's rating for a product in a single
	// statement: it updates the user's earliest review row for the product
	// if one exists, else inserts a fresh rating-only row.
	UpsertRating(ctx context.Context, productID, userID int64, rating int, at time.Time) error
	RatingsForProduct(ctx context.Context, productID int64) ([]int, error)
}
