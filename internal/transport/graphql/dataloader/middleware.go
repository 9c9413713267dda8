package dataloader

import "net/http"

// Middleware injects fresh Loaders into every request context. Loader caches
// must not outlive a request: the history is mutable between calls, and the
// executor defers Session.records lazies precisely so one request's sessions
// batch into a single query.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
