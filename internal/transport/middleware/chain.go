// Package middleware holds the HTTP middleware stack wrapped around the
// GraphQL endpoint: panic recovery, request and session identifiers, access
// logging, CORS, rate limiting, and bearer-token auth.
package middleware

import "net/http"

// Middleware wraps an http.Handler with one concern.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into one. Order is outermost first:
// Chain(a, b)(h) serves requests through a, then b, then h.
func Chain(mws ...Middleware) Middleware {
	return func(inner http.Handler) http.Handler {
		wrapped := inner
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
