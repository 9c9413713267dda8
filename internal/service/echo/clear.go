package echo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/probelab/gqlprobe/internal/domain"
	"github.com/probelab/gqlprobe/pkg/ctxutil"
)

// ClearHistory deletes all recorded echo calls and sessions atomically,
// returning the number of records removed. Requires an authenticated caller.
func (s *Service) ClearHistory(ctx context.Context) (int, error) {
	username, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	var deleted int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var delErr error
		deleted, delErr = s.records.DeleteAll(txCtx)
		if delErr != nil {
			return fmt.Errorf("delete echo records: %w", delErr)
		}
		if delErr := s.sessions.DeleteAll(txCtx); delErr != nil {
			return fmt.Errorf("delete sessions: %w", delErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "history cleared",
		slog.String("username", username),
		slog.Int("records_deleted", deleted),
	)

	return deleted, nil
}
