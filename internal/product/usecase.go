package product

import (
	"context"
	"errors"

	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/product/dto"
)

var ErrNotFound = errors.New("product not found")

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
