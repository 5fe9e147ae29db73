package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/favorite"
	"github.com/vitrine-app/storefront/internal/model"
)

type favoriteUseCase struct {
	repo   favorite.Repository
	logger *zap.Logger
}

func NewFavoriteUseCase(repo favorite.Repository, logger *zap.Logger) favorite.UseCase {
	return &favoriteUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *favoriteUseCase) Add(ctx context.Context, userID, productID int64) (bool, error) {
	exists, err := uc.repo.ProductExists(ctx, productID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, favorite.ErrProductNotFound
	}

	created, err := uc.repo.Add(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	return !created, nil
}

func (uc *favoriteUseCase) Remove(ctx context.Context, userID, productID int64) error {
	removed, err := uc.repo.Remove(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return favorite.ErrFavoriteNotFound
	}
	return nil
}

func (uc *favoriteUseCase) ListProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	return uc.repo.ListProducts(ctx, userID)
}
