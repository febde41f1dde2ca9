package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrNoSecret     = errors.New("JWT secret not configured")
)

type userIDKey struct{}

// Verifier checks HS256 access tokens issued by the identity provider.
type Verifier struct {
	secret   []byte
	audience string
}

func NewVerifier(secret, audience string) *Verifier {
	return &Verifier{secret: []byte(secret), audience: audience}
}

// Verify returns the user id carried in the token's sub claim.
func (v *Verifier) Verify(tokenStr string) (uuid.UUID, error) {
	if len(v.secret) == 0 {
		return uuid.Nil, ErrNoSecret
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return uuid.Nil, errors.New("invalid audience")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return userID, nil
}

// Middleware rejects requests without a valid bearer token and stores the caller's id in the context.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := bearerToken(r)
		if err != nil {
			apperr.Write(w, apperr.Unauthorized("Invalid authentication credentials"))
			return
		}

		userID, err := v.Verify(tokenStr)
		if err != nil {
			logger.Warn(r.Context(), "Token verification failed", zap.Error(err))
			apperr.Write(w, apperr.Unauthorized("Authentication failed: "+err.Error()))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}
