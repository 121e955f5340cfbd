package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shorturl-service/internal/domain/shorturl"
	"shorturl-service/internal/http-server/middleware/auth"
	resp "shorturl-service/internal/lib/api/response"
	"shorturl-service/internal/lib/metrics"
	"shorturl-service/internal/lib/result"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	URL string `json:"url" validate:"required,url"`
}

type Response struct {
	resp.Response
	ID          int64  `json:"id,omitempty"`
	Key         string `json:"key,omitempty"`
	OriginalURL string `json:"original_url,omitempty"`
}

type URLCreator interface {
	CreateShortURL(ctx context.Context, rawURL, userID string) result.Result[*shorturl.ShortURL]
}

func New(log *slog.Logger, urlCreator URLCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.url.save.New"

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

		var req Request

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("failed to decode request body", slog.String("error", err.Error()))

			renderJSON(log, w, http.StatusBadRequest, resp.Error("invalid request body"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				renderJSON(log, w, http.StatusBadRequest, resp.ValidationError(validateErrs))
				return
			}

			renderJSON(log, w, http.StatusBadRequest, resp.Error("invalid request"))
			return
		}

		res := urlCreator.CreateShortURL(r.Context(), req.URL, userID)
		if !res.OK {
			if res.Code == "" {
				log.Error("failed to create short url", slog.String("error", res.Message))

				renderJSON(log, w, http.StatusInternalServerError, resp.Error("internal error"))
				return
			}

			renderJSON(log, w, resp.HTTPStatus(res.Code), resp.Error(res.Message))
			return
		}

		record := res.Data

		log.Info("short url created",
			slog.Int64("id", record.ID),
			slog.String("key", record.Key),
		)

		metrics.URLsCreatedTotal.Inc()

		renderJSON(log, w, http.StatusOK, Response{
			Response:    resp.OK(),
			ID:          record.ID,
			Key:         record.Key,
			OriginalURL: record.OriginalURL,
		})
	}
}

func renderJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
