package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"accountnumber":           {},
	"account_number":          {},
	"nationalidentification":  {},
	"national_identification": {},
	"routingnumber":           {},
	"routing_number":          {},
	"password":                {},
	"redis_password":          {},
	"database_dsn":            {},
}

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// Setup replaces the process logger. level is one of debug, info, warn, error.
func Setup(w io.Writer, level string) {
	current.Store(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(message string, fields Fields) {
	emit(slog.LevelDebug, message, nil, fields)
}

func Info(message string, fields Fields) {
	emit(slog.LevelInfo, message, nil, fields)
}

func Warn(message string, fields Fields) {
	emit(slog.LevelWarn, message, nil, fields)
}

func Error(message string, err error, fields Fields) {
	emit(slog.LevelError, message, err, fields)
}

// Critical marks failures that need an operator, such as a chargeback that
// did not complete.
func Critical(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	base["severity"] = "CRITICAL"
	emit(slog.LevelError, message, err, base)
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func emit(level slog.Level, message string, err error, fields Fields) {
	l := current.Load()
	if !l.Enabled(context.Background(), level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(fields)+1)
	if sanitized, ok := SanitizePayload(fields).(map[string]any); ok {
		for k, v := range sanitized {
			attrs = append(attrs, slog.Any(k, v))
		}
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.LogAttrs(context.Background(), level, message, attrs...)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
