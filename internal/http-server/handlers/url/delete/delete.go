package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"shorturl-service/internal/http-server/middleware/auth"
	resp "shorturl-service/internal/lib/api/response"
	"shorturl-service/internal/lib/metrics"
	"shorturl-service/internal/lib/result"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type URLDeleter interface {
	DeleteShortURL(ctx context.Context, id int64, userID string) result.Result[result.Void]
}

func New(log *slog.Logger, urlDeleter URLDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.url.delete.New"

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

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			renderJSON(log, w, http.StatusBadRequest, resp.Error("id must be an integer"))
			return
		}

		log = log.With(slog.Int64("id", id), slog.String("user_id", userID))

		res := urlDeleter.DeleteShortURL(r.Context(), id, userID)
		if !res.OK {
			if res.Code == "" {
				log.Error("failed to delete url", slog.String("error", res.Message))

				renderJSON(log, w, http.StatusInternalServerError, resp.Error("internal error"))
				return
			}

			log.Info("delete rejected", slog.String("code", string(res.Code)))

			renderJSON(log, w, resp.HTTPStatus(res.Code), resp.Error(res.Message))
			return
		}

		log.Info("url deleted")

		metrics.URLsDeletedTotal.Inc()

		renderJSON(log, w, http.StatusOK, resp.OK())
	}
}

func renderJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
