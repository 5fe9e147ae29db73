package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/content"
	"github.com/vitrine-app/storefront/internal/content/dto"
	"github.com/vitrine-app/storefront/internal/httpserver/respond"
	"github.com/vitrine-app/storefront/internal/validation"
)

type ContentHandler struct {
	uc     content.UseCase
	logger *zap.Logger
}

func NewContentHandler(uc content.UseCase, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{uc: uc, logger: logger}
}

// ListTips handles GET /tips.
func (h *ContentHandler) ListTips(w http.ResponseWriter, r *http.Request) {
	tips, err := h.uc.ListTips(r.Context())
	if err != nil {
		h.logger.Error("failed to list tips", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list tips")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "tip list",
		"tips":    tips,
	})
}

// CreateTip handles POST /admin/tips.
func (h *ContentHandler) CreateTip(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateTipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	tip, err := h.uc.CreateTip(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create tip", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not create tip")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "tip created",
		"tip":     tip,
	})
}

// ListFAQs handles GET /faqs.
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.uc.ListFAQs(r.Context())
	if err != nil {
		h.logger.Error("failed to list faqs", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list faqs")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "faq list",
		"faqs":    faqs,
	})
}

// CreateFAQ handles POST /admin/faqs.
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateFAQInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	faq, err := h.uc.CreateFAQ(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create faq", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not create faq")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "faq created",
		"faq":     faq,
	})
}

// DeleteFAQ handles DELETE /admin/faqs/{id}.
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.uc.DeleteFAQ(r.Context(), id); err != nil {
		if errors.Is(err, content.ErrFAQNotFound) {
			respond.Error(w, http.StatusNotFound, "faq not found")
			return
		}
		h.logger.Error("failed to delete faq", zap.Int64("faq_id", id), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not delete faq")
		return
	}

	respond.Message(w, http.StatusOK, "faq deleted")
}

// ListSocialMedia handles GET /social-media.
func (h *ContentHandler) ListSocialMedia(w http.ResponseWriter, r *http.Request) {
	links, err := h.uc.ListSocialMedia(r.Context())
	if err != nil {
		h.logger.Error("failed to list social media", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list social media")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":      "social media list",
		"social_media": links,
	})
}

// CreateSocialMedia handles POST /admin/social-media.
func (h *ContentHandler) CreateSocialMedia(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSocialMediaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validation.Struct(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sm, err := h.uc.CreateSocialMedia(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create social media link", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not create social media link")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message":      "social media link created",
		"social_media": sm,
	})
}
