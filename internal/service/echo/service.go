// Package echo implements the probe operations: the hello greeting, message
// echoing with persistent recording, history pagination, and session listing.
package echo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/probelab/gqlprobe/internal/config"
	"github.com/probelab/gqlprobe/internal/domain"
)

// Greeting is the fixed response of the Hello operation.
const Greeting = "Hello, world!"

type recordRepo interface {
	Insert(ctx context.Context, rec domain.EchoRecord) error
	List(ctx context.Context, limit, offset int) ([]domain.EchoRecord, int, error)
	DeleteAll(ctx context.Context) (int, error)
}

type sessionRepo interface {
	Touch(ctx context.Context, id uuid.UUID, seenAt time.Time) error
	ListRecent(ctx context.Context, limit int) ([]domain.Session, error)
	DeleteAll(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides echo probe operations.
type Service struct {
	records  recordRepo
	sessions sessionRepo
	tx       txManager
	cfg      config.EchoConfig
	log      *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a new echo service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	sessions sessionRepo,
	tx txManager,
	cfg config.EchoConfig,
) *Service {
	return &Service{
		records:  records,
		sessions: sessions,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "echo"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
