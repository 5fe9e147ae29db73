package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/product"
	"github.com/vitrine-app/storefront/internal/product/dto"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, logger *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now()

	description := &input.Description
	if input.Description == "" {
		description = nil
	}
	imageURL := &input.ImageURL
	if input.ImageURL == "" {
		imageURL = nil
	}
	videoURL := &input.VideoURL
	if input.VideoURL == "" {
		videoURL = nil
	}

	p := &model.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Description: description,
		Type:        input.Type,
		ImageURL:    imageURL,
		VideoURL:    videoURL,
		Stock:       *input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

// UpdateProduct applies a partial patch: only non-nil input fields overwrite
// the stored values.
func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.ImageURL != nil {
		p.ImageURL = input.ImageURL
	}
	if input.VideoURL != nil {
		p.VideoURL = input.VideoURL
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return product.ErrNotFound
	}
	return nil
}
