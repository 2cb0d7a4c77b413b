// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/helixml/rephrase/internal/log"
)

// Logging returns a middleware that writes one line per request.
// Server errors log at Error, client errors at Warn, everything else at Info.
// Mount it inside CorrelationID so the line carries the correlation id.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			}
			if id := log.CorrelationID(ctx); id != "" {
				attrs = append(attrs, slog.String(string(log.CorrelationIDKey), id))
			}
			if id := chimiddleware.GetReqID(ctx); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			logger.LogAttrs(ctx, requestLevel(status), "request completed", attrs...)
		})
	}
}

func requestLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
