package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// Limiter admits or rejects a request for a subject within the current window.
type Limiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rw.statusCode),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case rw.statusCode >= http.StatusInternalServerError:
			logger.Warn(r.Context(), "Request failed", fields...)
		case rw.statusCode >= http.StatusBadRequest:
			logger.Info(r.Context(), "Request rejected", fields...)
		default:
			logger.Debug(r.Context(), "Request served", fields...)
		}
	})
}

// throttle applies the limiter per client address. A limiter outage lets the request through.
func (h *Handler) throttle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.Limiter == nil {
			next(w, r)
			return
		}

		allowed, err := h.Limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			logger.Warn(r.Context(), "Rate limiter unavailable", zap.Error(err))
			next(w, r)
			return
		}
		if !allowed {
			writeError(w, r, apperr.TooManyRequests("Too many orders, please try again later"))
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
