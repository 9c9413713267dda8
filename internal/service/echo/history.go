package echo

import (
	"context"
	"fmt"

	"github.com/probelab/gqlprobe/internal/domain"
)

// HistoryInput holds the pagination parameters for the History operation.
type HistoryInput struct {
	Limit  int
	Offset int
}

// Validate checks the pagination bounds.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 1 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "min 1"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// History returns recorded echo calls, newest first, with the total count.
// The limit is clamped to the configured maximum.
func (s *Service) History(ctx context.Context, input HistoryInput) (domain.HistoryPage, error) {
	if err := input.Validate(); err != nil {
		return domain.HistoryPage{}, err
	}

	limit := input.Limit
	if limit > s.cfg.HistoryMaxLimit {
		limit = s.cfg.HistoryMaxLimit
	}

	items, total, err := s.records.List(ctx, limit, input.Offset)
	if err != nil {
		return domain.HistoryPage{}, fmt.Errorf("list echo records: %w", err)
	}

	return domain.HistoryPage{Items: items, TotalCount: total}, nil
}
