package info

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/http-server/middleware/auth"
	resp "shorturl-service/internal/lib/api/response"
	"shorturl-service/internal/lib/result"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Response struct {
	resp.Response
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     *string   `json:"owner_id,omitempty"`
}

type URLInfoProvider interface {
	GetShortURLInfo(ctx context.Context, id int64, userID string) result.Result[*shorturl.ShortURL]
}

func New(log *slog.Logger, urlInfo URLInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.url.info.New"

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

		res := urlInfo.GetShortURLInfo(r.Context(), id, userID)
		if !res.OK {
			if res.Code == "" {
				log.Error("failed to get short url info", slog.String("error", res.Message))

				renderJSON(log, w, http.StatusInternalServerError, resp.Error("internal error"))
				return
			}

			renderJSON(log, w, resp.HTTPStatus(res.Code), resp.Error(res.Message))
			return
		}

		record := res.Data

		renderJSON(log, w, http.StatusOK, Response{
			Response:    resp.OK(),
			ID:          record.ID,
			Key:         record.Key,
			OriginalURL: record.OriginalURL,
			CreatedAt:   record.CreatedAt,
			OwnerID:     record.OwnerID,
		})
	}
}

func renderJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
