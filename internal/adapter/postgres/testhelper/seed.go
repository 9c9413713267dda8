package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/probelab/gqlprobe/internal/domain"
)

// SeedSession creates a session row. Returns a filled domain.Session.
func SeedSession(t *testing.T, pool *pgxpool.Pool) domain.Session {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.Session{
		ID:         uuid.New(),
		StartedAt:  now,
		LastSeenAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, started_at, last_seen_at) VALUES ($1, $2, $3)`,
		session.ID, session.StartedAt, session.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return session
}

// SeedEchoRecord creates an echo record in the given session. createdAt allows
// tests to control ordering. Returns a filled domain.EchoRecord.
func SeedEchoRecord(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, message string, createdAt time.Time) domain.EchoRecord {
	t.Helper()
	ctx := context.Background()

	record := domain.EchoRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		Message:   message,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO echo_records (id, session_id, message, request_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.SessionID, record.Message, record.RequestID, record.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEchoRecord insert: %v", err)
	}

	return record
}

// TruncateAll wipes all data. Useful for tests that assert on global counts.
func TruncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `TRUNCATE sessions CASCADE`)
	if err != nil {
		t.Fatalf("testhelper: TruncateAll: %v", err)
	}
}
