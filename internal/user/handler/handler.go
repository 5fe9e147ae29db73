package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/httpserver/respond"
	"github.com/vitrine-app/storefront/internal/user"
	"github.com/vitrine-app/storefront/internal/user/dto"
	"github.com/vitrine-app/storefront/internal/validation"
)

type UserHandler struct {
	uc     user.UseCase
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input dto.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.uc.Register(r.Context(), &input)
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			respond.Error(w, http.StatusBadRequest, "username already exists")
			return
		}
		h.logger.Error("failed to register user", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not register user")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "user registered",
		"user":    dto.NewUserSummary(u),
	})
}

// Login handles POST /login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input dto.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := h.uc.Login(r.Context(), &input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not log in")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"token":   token,
		"user":    dto.NewUserProfile(u),
	})
}
