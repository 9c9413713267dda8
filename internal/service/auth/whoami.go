package auth

import (
	"context"

	"github.com/probelab/gqlprobe/internal/domain"
	"github.com/probelab/gqlprobe/pkg/ctxutil"
)

// Whoami returns the authenticated caller's identity.
func (s *Service) Whoami(ctx context.Context) (domain.Viewer, error) {
	username, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return domain.Viewer{}, domain.ErrUnauthorized
	}
	return domain.Viewer{Username: username}, nil
}
