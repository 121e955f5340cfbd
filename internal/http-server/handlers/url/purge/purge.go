// Package purge handles bulk deletions: a user wiping their own links
// and an admin wiping the whole store.
package purge

import (
	"context"
	"log/slog"
	"net/http"

	"shorturl-service/internal/http-server/middleware/auth"
	resp "shorturl-service/internal/lib/api/response"
	"shorturl-service/internal/lib/result"

	"github.com/go-chi/chi/v5/middleware"
)

type URLPurger interface {
	DeleteAllUserURLs(ctx context.Context, userID string) result.Result[result.Void]
	DeleteAllAsAdmin(ctx context.Context, userID string) result.Result[result.Void]
}

// New purges every link owned by the caller.
func New(log *slog.Logger, purger URLPurger) http.HandlerFunc {
	return handler(log, "http-server.handlers.url.purge.New",
		func(ctx context.Context, userID string) result.Result[result.Void] {
			return purger.DeleteAllUserURLs(ctx, userID)
		})
}

// Admin purges every link in the store regardless of owner.
func Admin(log *slog.Logger, purger URLPurger) http.HandlerFunc {
	return handler(log, "http-server.handlers.url.purge.Admin",
		func(ctx context.Context, userID string) result.Result[result.Void] {
			return purger.DeleteAllAsAdmin(ctx, userID)
		})
}

func handler(log *slog.Logger, op string, purge func(ctx context.Context, userID string) result.Result[result.Void]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID, ok := auth.GetUserID(r.Context())
		if !ok {
			log.Error("failed to get user id from context")

			renderJSON(log, w, http.StatusInternalServerError, resp.Error("failed to get user id"))
			return
		}

		res := purge(r.Context(), userID)
		if !res.OK {
			if res.Code == "" {
				log.Error("failed to purge urls", slog.String("error", res.Message))

				renderJSON(log, w, http.StatusInternalServerError, resp.Error("internal error"))
				return
			}

			renderJSON(log, w, resp.HTTPStatus(res.Code), resp.Error(res.Message))
			return
		}

		log.Info("urls purged", slog.String("user_id", userID))

		renderJSON(log, w, http.StatusOK, resp.OK())
	}
}

func renderJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
