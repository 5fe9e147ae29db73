package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/auth"
	"github.com/vitrine-app/storefront/internal/favorite"
	"github.com/vitrine-app/storefront/internal/favorite/dto"
	"github.com/vitrine-app/storefront/internal/httpserver/respond"
	"github.com/vitrine-app/storefront/internal/validation"
)

type FavoriteHandler struct {
	uc     favorite.UseCase
	logger *zap.Logger
}

func NewFavoriteHandler(uc favorite.UseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// List handles GET /favorites: the caller's favorites as product payloads.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	products, err := h.uc.ListProducts(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list favorites", zap.Int64("user_id", userID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list favorites")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   "user favorites",
		"favorites": products,
	})
}

// Add handles POST /favorites. Re-favoriting is not an error: the second
// call reports "already favorited" and writes nothing.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var input dto.AddFavoriteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	already, err := h.uc.Add(r.Context(), userID, input.ProductID)
	if err != nil {
		if errors.Is(err, favorite.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to add favorite",
			zap.Int64("user_id", userID), zap.Int64("product_id", input.ProductID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not add favorite")
		return
	}

	if already {
		respond.Message(w, http.StatusOK, "product already favorited")
		return
	}
	respond.Message(w, http.StatusCreated, "product added to favorites")
}

// Remove handles DELETE /favorites/{product_id}.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respond.Error(w, http.StatusBadRequest, "invalid product_id")
		return
	}

	if err := h.uc.Remove(r.Context(), userID, productID); err != nil {
		if errors.Is(err, favorite.ErrFavoriteNotFound) {
			respond.Error(w, http.StatusNotFound, "favorite not found")
			return
		}
		h.logger.Error("failed to remove favorite",
			zap.Int64("user_id", userID), zap.Int64("product_id", productID), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not remove favorite")
		return
	}

	respond.Message(w, http.StatusOK, "product removed from favorites")
}
