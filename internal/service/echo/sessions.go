package echo

import (
	"context"
	"fmt"

	"github.com/probelab/gqlprobe/internal/domain"
)

// Sessions returns recent test sessions ordered by last activity.
// The limit is clamped to the configured maximum.
func (s *Service) Sessions(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit < 1 {
		return nil, domain.NewValidationError("limit", "min 1")
	}
	if limit > s.cfg.SessionsMaxLimit {
		limit = s.cfg.SessionsMaxLimit
	}

	sessions, err := s.sessions.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
