package favorite

import (
	"context"
	"errors"

	"github.com/vitrine-app/storefront/internal/model"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type UseCase interface {
	// Add returns alreadyFavorited=true when the pair existed before.
	Add(ctx context.Context, userID, productID int64) (alreadyFavorited bool, err error)
	Remove(ctx context.Context, userID, productID int64) error
	ListProducts(ctx context.Context, userID int64) ([]model.Product, error)
}
