package redirect

import (
	"context"
	"log/slog"
	"net/http"

	resp "shorturl-service/internal/lib/api/response"
	"shorturl-service/internal/lib/metrics"
	"shorturl-service/internal/lib/result"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type URLResolver interface {
	ResolveByKey(ctx context.Context, key string) result.Result[string]
}

func New(log *slog.Logger, resolver URLResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handlers.redirect.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		key := chi.URLParam(r, "key")
		if key == "" {
			renderJSON(log, w, http.StatusBadRequest, resp.Error("key parameter is required"))
			return
		}

		res := resolver.ResolveByKey(r.Context(), key)
		if !res.OK {
			if res.Code == result.CodeNotFound {
				renderJSON(log, w, http.StatusNotFound, resp.Error(res.Message))
				return
			}

			log.Error("failed to resolve key", slog.String("key", key), slog.String("error", res.Message))

			renderJSON(log, w, http.StatusInternalServerError, resp.Error("internal error"))
			return
		}

		log.Debug("redirecting", slog.String("key", key), slog.String("url", res.Data))

		metrics.RedirectsTotal.Inc()

		http.Redirect(w, r, res.Data, http.StatusFound)
	}
}

func renderJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	if err := resp.RenderJSON(w, status, v); err != nil {
		log.Error("failed to render JSON response", slog.String("error", err.Error()))
	}
}
