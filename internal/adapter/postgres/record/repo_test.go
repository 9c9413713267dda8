package record_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/probelab/gqlprobe/internal/adapter/postgres/record"
	"github.com/probelab/gqlprobe/internal/adapter/postgres/testhelper"
	"github.com/probelab/gqlprobe/internal/domain"
)

// newRepo sets up a clean test DB and returns a ready Repo + pool.
// Tests in this package assert on global history ordering and totals,
// so the DB is truncated between tests and they do not run in parallel.
func newRepo(t *testing.T) (*record.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateAll(t, pool)
	return record.New(pool), pool
}

func TestRepo_Insert(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	session := testhelper.SeedSession(t, pool)

	requestID := "req-1"
	rec := domain.EchoRecord{
		ID:        uuid.New(),
		SessionID: session.ID,
		Message:   "hello there",
		RequestID: &requestID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert: unexpected error: %v", err)
	}

	got, total, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if total != 1 {
		t.Fatalf("List total = %d, want 1", total)
	}
	if len(got) != 1 {
		t.Fatalf("List returned %d records, want 1", len(got))
	}
	if got[0].ID != rec.ID {
		t.Errorf("ID mismatch: got %s, want %s", got[0].ID, rec.ID)
	}
	if got[0].Message != rec.Message {
		t.Errorf("Message = %q, want %q", got[0].Message, rec.Message)
	}
	if got[0].RequestID == nil || *got[0].RequestID != requestID {
		t.Errorf("RequestID = %v, want %q", got[0].RequestID, requestID)
	}
	if !got[0].CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, rec.CreatedAt)
	}
}

func TestRepo_Insert_MissingSession(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	rec := domain.EchoRecord{
		ID:        uuid.New(),
		SessionID: uuid.New(), // no such session
		Message:   "orphan",
		CreatedAt: time.Now().UTC(),
	}

	err := repo.Insert(ctx, rec)
	if err == nil {
		t.Fatal("Insert with missing session: expected error, got nil")
	}
}

func TestRepo_List_OrderAndPagination(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	session := testhelper.SeedSession(t, pool)

	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	var seeded []domain.EchoRecord
	for i := 0; i < 5; i++ {
		rec := testhelper.SeedEchoRecord(t, pool, session.ID, "msg", base.Add(time.Duration(i)*time.Minute))
		seeded = append(seeded, rec)
	}

	// Newest first.
	got, total, err := repo.List(ctx, 3, 0)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("List total = %d, want 5", total)
	}
	if len(got) != 3 {
		t.Fatalf("List returned %d records, want 3", len(got))
	}
	for i, want := range []domain.EchoRecord{seeded[4], seeded[3], seeded[2]} {
		if got[i].ID != want.ID {
			t.Errorf("page 1 record[%d] = %s, want %s", i, got[i].ID, want.ID)
		}
	}

	// Second page.
	got, total, err = repo.List(ctx, 3, 3)
	if err != nil {
		t.Fatalf("List page 2: unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("List page 2 total = %d, want 5", total)
	}
	if len(got) != 2 {
		t.Fatalf("List page 2 returned %d records, want 2", len(got))
	}
	for i, want := range []domain.EchoRecord{seeded[1], seeded[0]} {
		if got[i].ID != want.ID {
			t.Errorf("page 2 record[%d] = %s, want %s", i, got[i].ID, want.ID)
		}
	}
}

func TestRepo_List_StableTiebreaker(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	session := testhelper.SeedSession(t, pool)

	// Same timestamp, ordering falls back to id DESC.
	at := time.Now().UTC().Truncate(time.Microsecond)
	a := testhelper.SeedEchoRecord(t, pool, session.ID, "a", at)
	b := testhelper.SeedEchoRecord(t, pool, session.ID, "b", at)

	first, _, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	second, _, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List again: unexpected error: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 records in both listings, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("ordering not stable: first=%v second=%v", first, second)
		}
	}
	// Both seeded records present.
	ids := map[uuid.UUID]bool{first[0].ID: true, first[1].ID: true}
	if !ids[a.ID] || !ids[b.ID] {
		t.Errorf("expected both seeded records, got %v", ids)
	}
}

func TestRepo_ListBySessionIDs(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	s1 := testhelper.SeedSession(t, pool)
	s2 := testhelper.SeedSession(t, pool)
	other := testhelper.SeedSession(t, pool)

	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	r1 := testhelper.SeedEchoRecord(t, pool, s1.ID, "one", base)
	r2 := testhelper.SeedEchoRecord(t, pool, s1.ID, "two", base.Add(time.Minute))
	r3 := testhelper.SeedEchoRecord(t, pool, s2.ID, "three", base)
	testhelper.SeedEchoRecord(t, pool, other.ID, "noise", base)

	got, err := repo.ListBySessionIDs(ctx, []uuid.UUID{s1.ID, s2.ID})
	if err != nil {
		t.Fatalf("ListBySessionIDs: unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListBySessionIDs returned %d records, want 3", len(got))
	}

	bySession := make(map[uuid.UUID][]domain.EchoRecord)
	for _, rec := range got {
		bySession[rec.SessionID] = append(bySession[rec.SessionID], rec)
	}

	if len(bySession[s1.ID]) != 2 {
		t.Fatalf("session 1: got %d records, want 2", len(bySession[s1.ID]))
	}
	// Newest first within a session.
	if bySession[s1.ID][0].ID != r2.ID || bySession[s1.ID][1].ID != r1.ID {
		t.Errorf("session 1 records out of order: %v", bySession[s1.ID])
	}
	if len(bySession[s2.ID]) != 1 || bySession[s2.ID][0].ID != r3.ID {
		t.Errorf("session 2: got %v, want [%s]", bySession[s2.ID], r3.ID)
	}
}

func TestRepo_ListBySessionIDs_Empty(t *testing.T) {
	repo, _ := newRepo(t)

	got, err := repo.ListBySessionIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListBySessionIDs(nil): unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ListBySessionIDs(nil) returned %d records, want 0", len(got))
	}
}

func TestRepo_DeleteAll(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	session := testhelper.SeedSession(t, pool)
	now := time.Now().UTC()
	testhelper.SeedEchoRecord(t, pool, session.ID, "one", now)
	testhelper.SeedEchoRecord(t, pool, session.ID, "two", now)

	deleted, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll: unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("DeleteAll = %d, want 2", deleted)
	}

	_, total, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("List after DeleteAll: unexpected error: %v", err)
	}
	if total != 0 {
		t.Fatalf("total after DeleteAll = %d, want 0", total)
	}
}
