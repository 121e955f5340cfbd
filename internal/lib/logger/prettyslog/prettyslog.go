// Package prettyslog is a slog handler for local development: colored
// level tags, a compact timestamp and pretty-printed attributes.
package prettyslog

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"

	"github.com/fatih/color"
)

type Handler struct {
	opts   *slog.HandlerOptions
	logger *stdLog.Logger
	attrs  []slog.Attr
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &Handler{
		opts:   opts,
		logger: stdLog.New(out, "", 0),
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))

	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()

		return true
	})

	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}

	var rendered []byte

	if len(fields) > 0 {
		var err error

		rendered, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	h.logger.Println(
		r.Time.Format("[15:04:05.000]"),
		level,
		color.CyanString(r.Message),
		color.WhiteString(string(rendered)),
	)

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		opts:   h.opts,
		logger: h.logger,
		attrs:  append(h.attrs, attrs...),
	}
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	// Groups are flattened; good enough for local output.
	return &Handler{
		opts:   h.opts,
		logger: h.logger,
		attrs:  h.attrs,
	}
}
