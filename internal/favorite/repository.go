package favorite

import (
	"context"

	"github.com/vitrine-app/storefront/internal/model"
)

type Repository interface {
	// Add inserts the pair unless it already exists; created reports whether
	// a new row was written.
	Add(ctx context.Context, userID, productID int64) (created bool, err error)
	Remove(ctx context.Context, userID, productID int64) (removed bool, err error)
	ListProducts(ctx context.Context, userID int64) ([]model.Product, error)
	ProductExists(ctx context.Context, productID int64) (bool, error)
}
