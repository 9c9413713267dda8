package testhelper

import (
	"context"
	"testing"
	"time"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	session := SeedSession(t, pool)
	record := SeedEchoRecord(t, pool, session.ID, "smoke", time.Now())

	var message string
	err := pool.QueryRow(
		context.Background(),
		`SELECT message FROM echo_records WHERE id = $1`,
		record.ID,
	).Scan(&message)
	if err != nil {
		t.Fatalf("expected echo record in DB, got error: %v", err)
	}

	if message != "smoke" {
		t.Fatalf("expected message %q, got %q", "smoke", message)
	}
}
