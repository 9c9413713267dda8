package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/probelab/gqlprobe/pkg/ctxutil"
)

// SessionID assigns each request to a test session. Clients group their calls
// by sending the same X-Session-Id (a UUID) across requests; when the header
// is missing or malformed a fresh session ID is generated. The effective ID
// is echoed back in the response header so clients can pick it up.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get("X-Session-Id"))
		if err != nil || id == uuid.Nil {
			id = uuid.New()
		}
		ctx := ctxutil.WithSessionID(r.Context(), id)
		w.Header().Set("X-Session-Id", id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
