package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/vitrine-app/storefront/internal/auth"
	"github.com/vitrine-app/storefront/internal/httpserver/respond"
)

// AdminChecker reports whether a user has the admin flag set.
// Implemented by the user usecase.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

type Authenticator struct {
	jwt    *auth.JWTManager
	admins AdminChecker
	logger *zap.Logger
}

func NewAuthenticator(jwt *auth.JWTManager, admins AdminChecker, logger *zap.Logger) *Authenticator {
	return &Authenticator{jwt: jwt, admins: admins, logger: logger}
}

// RequireUser rejects requests without a valid bearer token and stores the
// user id on the context for downstream handlers.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respond.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := a.jwt.ValidateToken(token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	})
}

// RequireAdmin must be chained after RequireUser. The admin flag is read
// fresh from the store so revocations take effect immediately.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFrom(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		isAdmin, err := a.admins.IsAdmin(r.Context(), userID)
		if err != nil {
			a.logger.Error("admin lookup failed", zap.Int64("user_id", userID), zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "could not verify permissions")
			return
		}
		if !isAdmin {
			respond.Error(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
