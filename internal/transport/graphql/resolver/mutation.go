package resolver

import (
	"context"

	"github.com/probelab/gqlprobe/internal/service/auth"
	"github.com/probelab/gqlprobe/internal/service/echo"
	"github.com/probelab/gqlprobe/internal/transport/graphql/model"
)

func (r *Resolver) echoMessage(ctx context.Context, args map[string]any) (any, error) {
	msg, err := r.echo.Echo(ctx, echo.EchoInput{Message: stringArg(args, "message")})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *Resolver) login(ctx context.Context, args map[string]any) (any, error) {
	payload, err := r.auth.Login(ctx, auth.LoginInput{
		Username: stringArg(args, "username"),
		Password: stringArg(args, "password"),
	})
	if err != nil {
		return nil, err
	}
	return model.AuthPayload(payload), nil
}

func (r *Resolver) clearHistory(ctx context.Context, _ map[string]any) (any, error) {
	deleted, err := r.echo.ClearHistory(ctx)
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
