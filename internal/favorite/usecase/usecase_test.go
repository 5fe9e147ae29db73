package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/favorite"
	"github.com/vitrine-app/storefront/internal/model"
)

type pair struct{ userID, productID int64 }

type fakeRepo struct {
	favorites map[pair]bool
	products  map[int64]model.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		favorites: map[pair]bool{},
		products:  map[int64]model.Product{1: {ID: 1, Name: "Longboard"}},
	}
}

func (f *fakeRepo) Add(_ context.Context, userID, productID int64) (bool, error) {
	k := pair{userID, productID}
	if f.favorites[k] {
		return false, nil
	}
	f.favorites[k] = true
	return true, nil
}

func (f *fakeRepo) Remove(_ context.Context, userID, productID int64) (bool, error) {
	k := pair{userID, productID}
	if !f.favorites[k] {
		return false, nil
	}
	delete(f.favorites, k)
	return true, nil
}

func (f *fakeRepo) ListProducts(_ context.Context, userID int64) ([]model.Product, error) {
	var out []model.Product
	for k := range f.favorites {
		if k.userID == userID {
			out = append(out, f.products[k.productID])
		}
	}
	return out, nil
}

func (f *fakeRepo) ProductExists(_ context.Context, productID int64) (bool, error) {
	_, ok := f.products[productID]
	return ok, nil
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFavoriteUseCase(repo, zap.NewNop())
	ctx := context.Background()

	already, err := uc.Add(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = uc.Add(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, already, "second add reports already favorited")

	products, err := uc.ListProducts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, products, 1, "duplicate submission never creates a second row")
}

func TestAddFavoriteUnknownProduct(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeRepo(), zap.NewNop())

	_, err := uc.Add(context.Background(), 1, 404)
	assert.ErrorIs(t, err, favorite.ErrProductNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	repo := newFakeRepo()
	uc := NewFavoriteUseCase(repo, zap.NewNop())
	ctx := context.Background()

	_, err := uc.Add(ctx, 1, 1)
	require.NoError(t, err)

	require.NoError(t, uc.Remove(ctx, 1, 1))

	err = uc.Remove(ctx, 1, 1)
	assert.ErrorIs(t, err, favorite.ErrFavoriteNotFound)
}
