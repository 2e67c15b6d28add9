package middleware

import (
	"context"
	"net/http"
	"strings"

	"zenith-project/backend/logging"
	"zenith-project/backend/utils"
)

type contextKey string

// ClaimsKey je ključ pod kojim middleware ostavlja claims u request kontekstu.
const ClaimsKey contextKey = "claims"

func JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logging.Logger.Warnf("Event ID: JWT_AUTH_MISSING_HEADER, Description: Authorization header missing for request to %s %s", r.Method, r.URL.Path)
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: JWT_AUTH_INVALID_TOKEN, Description: Invalid token provided for request to %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromRequest vraća claims koje je middleware ostavio u kontekstu.
func ClaimsFromRequest(r *http.Request) *utils.Claims {
	claims, _ := r.Context().Value(ClaimsKey).(*utils.Claims)
	return claims
}
