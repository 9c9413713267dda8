// Package resolver dispatches GraphQL root fields to the service layer and
// shapes results as wire values (see the model package).
package resolver

import (
	"context"
	"fmt"

	"github.com/probelab/gqlprobe/internal/domain"
	"github.com/probelab/gqlprobe/internal/service/auth"
	"github.com/probelab/gqlprobe/internal/service/echo"
)

// EchoService covers the probe operations the resolver needs.
type EchoService interface {
	Hello(ctx context.Context) string
	Echo(ctx context.Context, input echo.EchoInput) (string, error)
	History(ctx context.Context, input echo.HistoryInput) (domain.HistoryPage, error)
	Sessions(ctx context.Context, limit int) ([]domain.Session, error)
	ClearHistory(ctx context.Context) (int, error)
}

// AuthService covers login and identity lookup.
type AuthService interface {
	Login(ctx context.Context, input auth.LoginInput) (domain.AuthPayload, error)
	Whoami(ctx context.Context) (domain.Viewer, error)
}

type rootFunc func(ctx context.Context, args map[string]any) (any, error)

// Resolver resolves root fields. Field names are qualified with the root
// type, e.g. "Query.hello" or "Mutation.echo".
type Resolver struct {
	echo EchoService
	auth AuthService

	fields map[string]rootFunc
}

// New creates a Resolver over the given services.
func New(echoSvc EchoService, authSvc AuthService) *Resolver {
	r := &Resolver{echo: echoSvc, auth: authSvc}
	r.fields = map[string]rootFunc{
		"Query.hello":           r.hello,
		"Query.whoami":          r.whoami,
		"Query.history":         r.history,
		"Query.sessions":        r.sessions,
		"Mutation.echo":         r.echoMessage,
		"Mutation.login":        r.login,
		"Mutation.clearHistory": r.clearHistory,
	}
	return r
}

// Resolve executes the named root field. Unknown names indicate a schema
// and resolver mismatch, which query validation should have prevented.
func (r *Resolver) Resolve(ctx context.Context, name string, args map[string]any) (any, error) {
	fn, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("no resolver for field %s", name)
	}
	return fn(ctx, args)
}
