package http

import (
	"net/http"
	"time"

	"blogz/internal/logger"
)

// withLogging emits one access-log line per request: method, URI, response
// status, body size and wall-clock duration. The status and size are
// observed through the responseWriter decorator, since handlers and
// redirects write them downstream.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
