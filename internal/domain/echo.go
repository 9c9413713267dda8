// Package domain holds the core entities of the probe server: recorded echo
// calls and the test sessions that group them. Entities carry no transport or
// storage concerns.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EchoRecord is one recorded echo mutation call.
type EchoRecord struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Message   string
	// RequestID is the X-Request-Id of the HTTP request that produced the
	// record. Nil when the header was absent and no middleware generated one.
	RequestID *string
	CreatedAt time.Time
}

// Session groups echo records produced under one X-Session-Id header,
// typically a single test run.
type Session struct {
	ID          uuid.UUID
	StartedAt   time.Time
	LastSeenAt  time.Time
	RecordCount int
}

// HistoryPage is one page of recorded echo calls, newest first.
type HistoryPage struct {
	Items      []EchoRecord
	TotalCount int
}
