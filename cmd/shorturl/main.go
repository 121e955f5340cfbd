package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shorturl-service/internal/config"
	"shorturl-service/internal/http-server/handlers/redirect"
	del "shorturl-service/internal/http-server/handlers/url/delete"
	"shorturl-service/internal/http-server/handlers/url/info"
	"shorturl-service/internal/http-server/handlers/url/list"
	"shorturl-service/internal/http-server/handlers/url/purge"
	"shorturl-service/internal/http-server/handlers/url/save"
	mwAuth "shorturl-service/internal/http-server/middleware/auth"
	mwLogger "shorturl-service/internal/http-server/middleware/logger"
	mwMetrics "shorturl-service/internal/http-server/middleware/metrics"
	"shorturl-service/internal/lib/jwt"
	"shorturl-service/internal/lib/logger"
	"shorturl-service/internal/service/shortener"
	"shorturl-service/internal/service/userurl"
	"shorturl-service/internal/storage/instrumented"
	"shorturl-service/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("starting shorturl service", slog.String("env", cfg.Env))

	db, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	publicKey, err := os.ReadFile(cfg.Auth.PublicKeyPath)
	if err != nil {
		log.Error("failed to read jwt public key", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tokenValidator, err := jwt.New(string(publicKey))
	if err != nil {
		log.Error("failed to initialize token validator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repo := instrumented.New(db)

	shortenerSvc := shortener.New(log, repo)
	userURLSvc := userurl.New(log, repo, shortenerSvc, db)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwMetrics.New())

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/urls", list.New(log, userURLSvc))
	router.Get("/{key}", redirect.New(log, shortenerSvc))

	router.Group(func(r chi.Router) {
		r.Use(mwAuth.New(log, tokenValidator))

		r.Post("/url", save.New(log, userURLSvc))
		r.Get("/url/{id}", info.New(log, userURLSvc))
		r.Delete("/url/{id}", del.New(log, userURLSvc))
		r.Get("/urls/mine", list.Mine(log, userURLSvc))
		r.Delete("/urls/mine", purge.New(log, userURLSvc))
		r.Delete("/urls", purge.Admin(log, userURLSvc))
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPServer.Timeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPServer.Timeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPServer.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("starting HTTP server", slog.String("addr", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", slog.String("error", err.Error()))
	}

	log.Info("shutdown complete")
}
