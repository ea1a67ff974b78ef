package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
)

var ErrNotAllowed = errors.New("role is not allowed")

// Authorize reports whether role is one of the allowed roles.
func Authorize(role domain.Role, allowed ...domain.Role) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return ErrNotAllowed
}

// AuthMiddleware validates the bearer token and stores the caller's
// identity and role on the request context.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects requests whose authenticated role is not in the
// allowed set. It must sit below AuthMiddleware in the chain.
func RequireRoles(allowed ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(RoleKey).(domain.Role)
			if !ok || Authorize(role, allowed...) != nil {
				utils.RespondWithError(w, http.StatusForbidden, "Not allowed.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
