package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/auth"
	"github.com/vitrine-app/storefront/internal/model"
	"github.com/vitrine-app/storefront/internal/user"
	"github.com/vitrine-app/storefront/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	jwt    *auth.JWTManager
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, jwt *auth.JWTManager, logger *zap.Logger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		jwt:    jwt,
		logger: logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)

	existing, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     username,
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: hash,
		Name:         input.Name,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		// Unique constraint can still fire under concurrent registration.
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, user.ErrUsernameTaken
		}
		return nil, err
	}

	return u, nil
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (string, *model.User, error) {
	u, err := uc.repo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		return "", nil, err
	}
	if u == nil || !auth.CheckPassword(u.PasswordHash, input.Password) {
		return "", nil, user.ErrInvalidCredentials
	}

	token, err := uc.jwt.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("failed to issue token", zap.Int64("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	return token, u, nil
}

func (uc *userUseCase) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, errors.New("user not found")
	}
	return u.IsAdmin, nil
}
