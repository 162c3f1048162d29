package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// tenantRecord is seeded into the context by Logging and filled in by
// whichever downstream middleware resolves the tenant, so the request
// summary line can carry the tenant id even though resolution happens
// deeper in the chain.
type tenantRecord struct {
	id  int64
	set bool
}

const tenantLogKey contextKey = "tenant_log"

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Logging returns middleware that logs each request with structured JSON output.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &tenantRecord{}
			r = r.WithContext(context.WithValue(r.Context(), tenantLogKey, rec))

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rw.statusCode),
				zap.Int64("bytes", rw.written),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", RequestIDFromContext(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
			}
			if rec.set {
				fields = append(fields, zap.Int64("tenant_id", rec.id))
			}

			logger.Info("http request", fields...)
		})
	}
}
