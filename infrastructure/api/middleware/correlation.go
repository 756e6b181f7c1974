package middleware

import (
	"context"
	"net/http"

	"github.com/helixml/xact/internal/log"
)

// CorrelationHeader carries the correlation ID on requests and responses.
const CorrelationHeader = "X-Correlation-ID"

// Correlation tags each request with a correlation ID, taken from the
// request header when present and generated otherwise, and echoes it back.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationHeader)
		if id == "" || len(id) > 128 {
			id = log.NewCorrelationID()
		}
		w.Header().Set(CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(log.WithCorrelationID(r.Context(), id)))
	})
}

// GetCorrelationID returns the request's correlation ID, if any.
func GetCorrelationID(ctx context.Context) string {
	return log.CorrelationID(ctx)
}
