package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/crewchat-dev/crewchat/internal/domain"
	jwt_internal "github.com/crewchat-dev/crewchat/internal/utils/jwt"
)

// Key to store the authenticated user id in the request context
type key int

const userIdKey key = 0

// NeedAuth resolves the bearer token to a user id and stores it in the
// request context. Every engine endpoint sits behind it.
func NeedAuth(jwtService jwt_internal.JwtService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			uid, err := jwtService.DecodeToken(token)
			if err != nil {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIdKey, uid)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserIdFromContext returns the authenticated user id, or false when the
// request never went through NeedAuth.
func GetUserIdFromContext(r *http.Request) (domain.UserId, bool) {
	uid, ok := r.Context().Value(userIdKey).(domain.UserId)
	return uid, ok
}
