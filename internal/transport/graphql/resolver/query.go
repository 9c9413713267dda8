package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/probelab/gqlprobe/internal/service/echo"
	"github.com/probelab/gqlprobe/internal/transport/graphql/dataloader"
	"github.com/probelab/gqlprobe/internal/transport/graphql/model"
)

func (r *Resolver) hello(ctx context.Context, _ map[string]any) (any, error) {
	return r.echo.Hello(ctx), nil
}

func (r *Resolver) whoami(ctx context.Context, _ map[string]any) (any, error) {
	viewer, err := r.auth.Whoami(ctx)
	if err != nil {
		return nil, err
	}
	return model.Viewer(viewer), nil
}

func (r *Resolver) history(ctx context.Context, args map[string]any) (any, error) {
	input := echo.HistoryInput{
		Limit:  intArg(args, "limit", 20),
		Offset: intArg(args, "offset", 0),
	}
	page, err := r.echo.History(ctx, input)
	if err != nil {
		return nil, err
	}
	return model.HistoryPage(page), nil
}

func (r *Resolver) sessions(ctx context.Context, args map[string]any) (any, error) {
	sessions, err := r.echo.Sessions(ctx, intArg(args, "limit", 10))
	if err != nil {
		return nil, err
	}
	out := make([]any, len(sessions))
	for i, s := range sessions {
		out[i] = model.Session(s, recordsLazy(s.ID))
	}
	return out, nil
}

// recordsLazy defers Session.records to the request's DataLoader so all
// sessions of one response load their records in a single query.
func recordsLazy(sessionID uuid.UUID) model.Lazy {
	return func(ctx context.Context) model.Await {
		thunk := dataloader.FromContext(ctx).RecordsBySessionID.Load(ctx, sessionID)
		return func() (any, error) {
			records, err := thunk()
			if err != nil {
				return nil, err
			}
			return model.EchoRecords(records), nil
		}
	}
}
