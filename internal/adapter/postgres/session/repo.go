// Package session implements the test session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/probelab/gqlprobe/internal/adapter/postgres"
	"github.com/probelab/gqlprobe/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "sessions"

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Touch inserts the session if it does not exist, otherwise bumps last_seen_at.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("id", "started_at", "last_seen_at").
		Values(id, seenAt, seenAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET last_seen_at = EXCLUDED.last_seen_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session")
	}
	return nil
}

// ListRecent returns sessions ordered by last activity (newest first) with
// their record counts, limited to the given number of rows.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(
		"s.id", "s.started_at", "s.last_seen_at", "count(er.id)",
	).
		From(table + " s").
		LeftJoin("echo_records er ON er.session_id = s.id").
		GroupBy("s.id").
		OrderBy("s.last_seen_at DESC", "s.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "session")
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0, limit)
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.StartedAt, &s.LastSeenAt, &s.RecordCount); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "session")
	}

	return sessions, nil
}

// DeleteAll removes every session. Records cascade via the foreign key.
func (r *Repo) DeleteAll(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session")
	}
	return nil
}
