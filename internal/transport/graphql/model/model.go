// Package model maps domain entities to GraphQL wire values. Objects are
// represented as map[string]any keyed by schema field names, with a
// "__typename" entry for introspection of the concrete type. Scalars are
// pre-formatted here so the executor never sees domain types.
package model

import (
	"context"
	"time"

	"github.com/probelab/gqlprobe/internal/domain"
)

// Await blocks until a deferred field value is ready.
type Await func() (any, error)

// Lazy is a deferred field. The executor starts every Lazy of a list's
// elements before awaiting any of them, so sibling loads batch through
// the request's DataLoaders.
type Lazy func(ctx context.Context) Await

// FormatTime renders a DateTime scalar. Sub-second precision is kept so
// values survive a round trip through the API.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// EchoRecord maps a recorded echo call.
func EchoRecord(rec domain.EchoRecord) map[string]any {
	m := map[string]any{
		"__typename": "EchoRecord",
		"id":         rec.ID.String(),
		"sessionId":  rec.SessionID.String(),
		"message":    rec.Message,
		"requestId":  nil,
		"createdAt":  FormatTime(rec.CreatedAt),
	}
	if rec.RequestID != nil {
		m["requestId"] = *rec.RequestID
	}
	return m
}

// EchoRecords maps a record list, preserving order.
func EchoRecords(recs []domain.EchoRecord) []any {
	out := make([]any, len(recs))
	for i, rec := range recs {
		out[i] = EchoRecord(rec)
	}
	return out
}

// Session maps a test session. The records field is resolved lazily.
func Session(s domain.Session, records Lazy) map[string]any {
	return map[string]any{
		"__typename":  "Session",
		"id":          s.ID.String(),
		"startedAt":   FormatTime(s.StartedAt),
		"lastSeenAt":  FormatTime(s.LastSeenAt),
		"recordCount": s.RecordCount,
		"records":     records,
	}
}

// HistoryPage maps one page of recorded calls.
func HistoryPage(p domain.HistoryPage) map[string]any {
	return map[string]any{
		"__typename": "HistoryPage",
		"items":      EchoRecords(p.Items),
		"totalCount": p.TotalCount,
	}
}

// Viewer maps the authenticated caller.
func Viewer(v domain.Viewer) map[string]any {
	return map[string]any{
		"__typename": "Viewer",
		"username":   v.Username,
	}
}

// AuthPayload maps a successful login.
func AuthPayload(p domain.AuthPayload) map[string]any {
	return map[string]any{
		"__typename": "AuthPayload",
		"token":      p.Token,
		"expiresAt":  FormatTime(p.ExpiresAt),
		"viewer":     Viewer(p.Viewer),
	}
}
