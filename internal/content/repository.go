package content

import (
	"context"

	"github.com/vitrine-app/storefront/internal/model"
)

type Repository interface {
	ListTips(ctx context.Context) ([]model.Tip, error)
	CreateTip(ctx context.Context, tip *model.Tip) error

	ListFAQs(ctx context.Context) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, faq *model.FAQ) error
	DeleteFAQ(ctx context.Context, id int64) (bool, error)

	ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error)
	CreateSocialMedia(ctx context.Context, sm *model.SocialMedia) error
}
