// Package record implements the echo record repository using PostgreSQL.
// Queries are built with squirrel and executed through the shared Querier,
// so repository methods participate in context-carried transactions.
package record

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/probelab/gqlprobe/internal/adapter/postgres"
	"github.com/probelab/gqlprobe/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	table   = "echo_records"
	columns = "id, session_id, message, request_id, created_at"
)

// Repo provides echo record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new echo record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert stores a new echo record.
func (r *Repo) Insert(ctx context.Context, rec domain.EchoRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Insert(table).
		Columns("id", "session_id", "message", "request_id", "created_at").
		Values(rec.ID, rec.SessionID, rec.Message, rec.RequestID, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "echo_record")
	}
	return nil
}

// List returns recorded echo calls ordered newest first (created_at DESC,
// id DESC as tiebreaker) with limit/offset pagination, plus the total count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.EchoRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "echo_record")
	}

	sql, args, err := psql.Select(columns).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "echo_record")
	}
	defer rows.Close()

	records := make([]domain.EchoRecord, 0, limit)
	for rows.Next() {
		var rec domain.EchoRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Message, &rec.RequestID, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan echo_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "echo_record")
	}

	return records, total, nil
}

// ListBySessionIDs returns all records belonging to the given sessions,
// ordered newest first within each session. Used by the dataloader.
func (r *Repo) ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]domain.EchoRecord, error) {
	if len(sessionIDs) == 0 {
		return []domain.EchoRecord{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Select(columns).
		From(table).
		Where(squirrel.Eq{"session_id": sessionIDs}).
		OrderBy("session_id", "created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "echo_record")
	}
	defer rows.Close()

	var records []domain.EchoRecord
	for rows.Next() {
		var rec domain.EchoRecord
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Message, &rec.RequestID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan echo_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "echo_record")
	}

	return records, nil
}

// DeleteAll removes every recorded echo call and returns the number of rows deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "echo_record")
	}
	return int(tag.RowsAffected()), nil
}
