package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/httpserver/respond"
	"github.com/vitrine-app/storefront/internal/product"
	"github.com/vitrine-app/storefront/internal/product/dto"
	"github.com/vitrine-app/storefront/internal/validation"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.uc.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list products")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":  "product list",
		"products": products,
	})
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.uc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to get product", zap.Int64("product_id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not get product")
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// Create handles POST /admin/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not create product")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "product created",
		"product": p,
	})
}

// Update handles PUT /admin/products/{id} with partial-patch semantics.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input dto.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.uc.UpdateProduct(r.Context(), id, &input)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to update product", zap.Int64("product_id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not update product")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "product updated",
		"product": p,
	})
}

// Delete handles DELETE /admin/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not delete product")
		return
	}

	respond.Message(w, http.StatusOK, "product deleted")
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
