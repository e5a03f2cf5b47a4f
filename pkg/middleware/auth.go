package middleware

import (
	"net/http"
	"strings"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer JWT and puts the caller's id and role
// into the request context.
func Authenticate(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, r, "No token, authorization denied")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				utils.ResponseUnauthorized(w, r, "Invalid token format. Use: Bearer <token>")
				return
			}

			identity, err := utils.ParseToken(secret, token)
			if err != nil {
				logger.Debug("Rejected token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, r, "Token is not valid")
				return
			}

			ctx := utils.SetUserContext(r.Context(), identity.UserID, identity.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin - middleware cek role admin, must run after Authenticate
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, r, "Authentication required")
				return
			}

			if !utils.IsAdmin(r.Context()) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, r, "Access denied. Admins only.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
