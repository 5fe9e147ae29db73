package content

import (
	"context"
	"errors"

	"github.com/vitrine-app/storefront/internal/content/dto"
	"github.com/vitrine-app/storefront/internal/model"
)

var ErrFAQNotFound = errors.New("faq not found")

type UseCase interface {
	ListTips(ctx context.Context) ([]model.Tip, error)
	CreateTip(ctx context.Context, input *dto.CreateTipInput) (*model.Tip, error)

	ListFAQs(ctx context.Context) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, input *dto.CreateFAQInput) (*model.FAQ, error)
	DeleteFAQ(ctx context.Context, id int64) error

	ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error)
	CreateSocialMedia(ctx context.Context, input *dto.CreateSocialMediaInput) (*model.SocialMedia, error)
}
