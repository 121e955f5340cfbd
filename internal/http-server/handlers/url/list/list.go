package list

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

	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type Item struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     *string   `json:"owner_id,omitempty"`
}

type Response struct {
	resp.Response
	URLs []Item `json:"urls"`
}

type URLLister interface {
	ListAll(ctx context.Context, page, pageSize int) result.Result[[]*shorturl.ShortURL]
	ListUserURLs(ctx context.Context, userID string, page, pageSize int) result.Result[[]*shorturl.ShortURL]
}

// New lists a page of all short urls; no authentication required.
func New(log *slog.Logger, lister URLLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.url.list.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		page, pageSize := pagination(r)

		render(log, w, lister.ListAll(r.Context(), page, pageSize))
	}
}

// Mine lists a page of the authenticated caller's short urls.
func Mine(log *slog.Logger, lister URLLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.url.list.Mine"

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

		page, pageSize := pagination(r)

		render(log, w, lister.ListUserURLs(r.Context(), userID, page, pageSize))
	}
}

func pagination(r *http.Request) (page, pageSize int) {
	page = defaultPage
	pageSize = defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageSize = parsed
		}
	}

	return page, pageSize
}

func render(log *slog.Logger, w http.ResponseWriter, res result.Result[[]*shorturl.ShortURL]) {
	if !res.OK {
		if res.Code == "" {
			log.Error("failed to list urls", slog.String("error", res.Message))

			renderJSON(log, w, http.StatusInternalServerError, resp.Error("internal error"))
			return
		}

		renderJSON(log, w, resp.HTTPStatus(res.Code), resp.Error(res.Message))
		return
	}

	items := make([]Item, 0, len(res.Data))

	for _, record := range res.Data {
		items = append(items, Item{
			ID:          record.ID,
			Key:         record.Key,
			OriginalURL: record.OriginalURL,
			CreatedAt:   record.CreatedAt,
			OwnerID:     record.OwnerID,
		})
	}

	renderJSON(log, w, http.StatusOK, Response{
		Response: resp.OK(),
		URLs:     items,
	})
}

func renderJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
