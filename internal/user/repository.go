package user

import (
	"context"

	"github.com/vitrine-app/storefront/internal/model"
)

type Repository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
}
