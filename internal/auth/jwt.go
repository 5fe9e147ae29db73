package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vitrine-app/storefront/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// JWTManager issues and validates bearer tokens. Tokens carry only the user
// id (as the subject claim); roles are looked up fresh on every request.
type JWTManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewJWTManager(cfg *config.JWTConfig) (*JWTManager, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required but was empty")
	}
	return &JWTManager{
		secret:   []byte(cfg.SecretKey),
		lifetime: time.Duration(cfg.LifetimeHours) * time.Hour,
	}, nil
}

// GenerateToken creates a signed HS256 token for the given user id.
func (m *JWTManager) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the user id.
func (m *JWTManager) ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
