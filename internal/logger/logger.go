package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// ParseLevel maps a level name to a slog level. Unknown names report false
// and fall back to warn.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// New builds a logger writing to w. format is "json" or anything else for text.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, ok := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler)
	if !ok {
		l.Warn("Invalid log level specified, defaulting to WARN", "configuredLevel", level)
	}
	return l
}

// SetDefault installs l as the process-wide default logger.
func SetDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
