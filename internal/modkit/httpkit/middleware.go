package httpkit

import (
	"compress/flate"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"gitwrapped/internal/modkit/scope"
	"gitwrapped/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with extra middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		ScopeRequest(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.Logger(),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(60 * 1e9), // 60s, bounds the slowest aggregation fan-out
	}
}

// ScopeRequest copies the request id into the cross boundary scope so sinks
// that only see a context can still attribute their writes
func ScopeRequest() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := chimw.GetReqID(ctx); id != "" {
				ctx = scope.With(ctx, map[string]string{"request_id": id})
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
