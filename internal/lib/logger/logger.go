// Package logger wires slog handlers per environment: a colored
// human-oriented handler locally, JSON everywhere else.
package logger

import (
	"log/slog"
	"os"

	"shorturl-service/internal/lib/logger/prettyslog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Setup builds the logger for the given environment. Unknown
// environments get the prod configuration.
func Setup(env string) *slog.Logger {
	switch env {
	case EnvLocal:
		return slog.New(prettyslog.NewHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	case EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}
