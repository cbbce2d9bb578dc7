package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// ServiceName is attached to every record.
const ServiceName = "uuidgen"

// InitLogging configures the default slog logger.
//
// The logger writes JSON to w and normalizes a few common fields to make
// logs easier to query (for example, "ts" and "severity").
func InitLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(w, level)))
}

// ParseLevel maps "debug", "info", "warn" and "error" onto slog levels.
// Anything else is read as info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewHandler returns the JSON handler used by InitLogging.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "ts"
			case slog.LevelKey:
				a.Key = "severity"
			case slog.SourceKey:
				if src, ok := a.Value.Any().(*slog.Source); ok {
					return sourceAttr(src)
				}
			}
			return a
		},
	})

	return &contextHandler{Handler: jsonHandler}
}

func sourceAttr(src *slog.Source) slog.Attr {
	for _, root := range []string{"/internal/", "/cmd/"} {
		if strings.Contains(src.File, root) {
			relPath := filepath.Join(strings.Trim(root, "/"), strings.SplitAfter(src.File, root)[1])
			return slog.Attr{
				Key:   "file",
				Value: slog.StringValue(fmt.Sprintf("%s:%d", relPath, src.Line)),
			}
		}
	}
	return slog.Attr{}
}

type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if cID := CorrelationID(ctx); cID != "" {
		r.AddAttrs(slog.String("_cID", cID))
	}
	r.AddAttrs(slog.String("service", ServiceName))

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}
