// Package httpserver assembles the chi router: global middleware, public
// routes, token-gated routes, and the admin group.
package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/config"
	contenthandler "github.com/vitrine-app/storefront/internal/content/handler"
	favoritehandler "github.com/vitrine-app/storefront/internal/favorite/handler"
	"github.com/vitrine-app/storefront/internal/middleware"
	producthandler "github.com/vitrine-app/storefront/internal/product/handler"
	reviewhandler "github.com/vitrine-app/storefront/internal/review/handler"
	userhandler "github.com/vitrine-app/storefront/internal/user/handler"
)

type Handlers struct {
	User     *userhandler.UserHandler
	Product  *producthandler.ProductHandler
	Review   *reviewhandler.ReviewHandler
	Favorite *favoritehandler.FavoriteHandler
	Content  *contenthandler.ContentHandler
}

func NewRouter(h Handlers, authn *middleware.Authenticator, corsCfg *config.CORSConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.Get("/products", h.Product.List)
	r.Get("/products/{id}", h.Product.Get)
	r.Get("/products/{id}/reviews", h.Review.ListComments)
	r.Get("/products/{id}/rating", h.Review.GetAggregate)
	r.Get("/tips", h.Content.ListTips)
	r.Get("/faqs", h.Content.ListFAQs)
	r.Get("/social-media", h.Content.ListSocialMedia)
	r.Post("/users", h.User.Register)
	r.Post("/login", h.User.Login)

	// Routes requiring a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(authn.RequireUser)

		r.Get("/favorites", h.Favorite.List)
		r.Post("/favorites", h.Favorite.Add)
		r.Delete("/favorites/{product_id}", h.Favorite.Remove)

		r.Post("/products/{id}/reviews", h.Review.AddComment)
		r.Delete("/products/{id}/reviews/{review_id}", h.Review.DeleteComment)
		r.Post("/products/{id}/rating", h.Review.SubmitRating)
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(authn.RequireUser)
		r.Use(authn.RequireAdmin)

		r.Post("/products", h.Product.Create)
		r.Put("/products/{id}", h.Product.Update)
		r.Delete("/products/{id}", h.Product.Delete)

		r.Post("/tips", h.Content.CreateTip)
		r.Post("/faqs", h.Content.CreateFAQ)
		r.Delete("/faqs/{id}", h.Content.DeleteFAQ)
		r.Post("/social-media", h.Content.CreateSocialMedia)
	})

	return r
}
