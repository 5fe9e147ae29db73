package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/content"
	"github.com/vitrine-app/storefront/internal/content/dto"
	"github.com/vitrine-app/storefront/internal/model"
)

type contentUseCase struct {
	repo   content.Repository
	logger *zap.Logger
}

func NewContentUseCase(repo content.Repository, logger *zap.Logger) content.UseCase {
	return &contentUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *contentUseCase) ListTips(ctx context.Context) ([]model.Tip, error) {
	return uc.repo.ListTips(ctx)
}

func (uc *contentUseCase) CreateTip(ctx context.Context, input *dto.CreateTipInput) (*model.Tip, error) {
	category := &input.Category
	if input.Category == "" {
		category = nil
	}
	tip := &model.Tip{
		Title:    input.Title,
		Content:  input.Content,
		Category: category,
	}
	if err := uc.repo.CreateTip(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

func (uc *contentUseCase) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	return uc.repo.ListFAQs(ctx)
}

func (uc *contentUseCase) CreateFAQ(ctx context.Context, input *dto.CreateFAQInput) (*model.FAQ, error) {
	faq := &model.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := uc.repo.CreateFAQ(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (uc *contentUseCase) DeleteFAQ(ctx context.Context, id int64) error {
	deleted, err := uc.repo.DeleteFAQ(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return content.ErrFAQNotFound
	}
	return nil
}

func (uc *contentUseCase) ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error) {
	return uc.repo.ListSocialMedia(ctx)
}

func (uc *contentUseCase) CreateSocialMedia(ctx context.Context, input *dto.CreateSocialMediaInput) (*model.SocialMedia, error) {
	sm := &model.SocialMedia{
		Platform: input.Platform,
		URL:      input.URL,
	}
	if err := uc.repo.CreateSocialMedia(ctx, sm); err != nil {
		return nil, err
	}
	return sm, nil
}
