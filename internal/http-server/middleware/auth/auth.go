package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"shorturl-service/internal/lib/jwt"

	"github.com/go-chi/chi/v5/middleware"
)

type contextKey string

const contextKeyUserID contextKey = "user_id"

func New(log *slog.Logger, validator *jwt.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "middleware.auth.New"

		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("auth middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("missing authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("invalid authorization header format")
				http.Error(w, "Unauthorized: invalid header format", http.StatusUnauthorized)
				return
			}

			claims, err := validator.Validate(parts[1])
			if err != nil {
				log.Warn("token validation failed", slog.String("error", err.Error()))
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			log.Debug("user authenticated", slog.String("user_id", claims.UserID))

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), claims.UserID)))
		}

		return http.HandlerFunc(fn)
	}
}

// ContextWithUserID stores the authenticated user's id in the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKeyUserID, userID)
}

// GetUserID retrieves the authenticated user's id from the request
// context. Returns the id and true if found, or empty string and false.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKeyUserID).(string)
	return userID, ok
}
