package echo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/probelab/gqlprobe/internal/domain"
	"github.com/probelab/gqlprobe/pkg/ctxutil"
)

// Echo validates the message, records the call, and returns the message
// byte-identical to the input. Recording is a side effect: a storage failure
// is logged but never changes the response.
func (s *Service) Echo(ctx context.Context, input EchoInput) (string, error) {
	if err := input.Validate(s.cfg.MaxMessageLength); err != nil {
		return "", err
	}

	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		// No session means nothing to record against. Still a valid echo.
		s.log.WarnContext(ctx, "echo call without session, skipping recording")
		return input.Message, nil
	}

	if err := s.record(ctx, sessionID, input.Message); err != nil {
		s.log.ErrorContext(ctx, "failed to record echo call",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)
	}

	return input.Message, nil
}

// record persists the session touch and the echo record atomically.
func (s *Service) record(ctx context.Context, sessionID uuid.UUID, message string) error {
	now := s.now()

	var requestID *string
	if rid := ctxutil.RequestIDFromCtx(ctx); rid != "" {
		requestID = &rid
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.sessions.Touch(txCtx, sessionID, now); err != nil {
			return fmt.Errorf("touch session: %w", err)
		}

		rec := domain.EchoRecord{
			ID:        uuid.New(),
			SessionID: sessionID,
			Message:   message,
			RequestID: requestID,
			CreatedAt: now,
		}
		if err := s.records.Insert(txCtx, rec); err != nil {
			return fmt.Errorf("insert echo record: %w", err)
		}
		return nil
	})
}
