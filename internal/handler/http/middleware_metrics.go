package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/report-catalog/internal/metrics"
)

// unmatchedRoute labels requests that matched no registered pattern, keeping
// raw paths out of the label set.
const unmatchedRoute = "unmatched"

func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		metrics.ObserveRequest(r.Method, route, mw.statusCode(), time.Since(start))
	})
}
