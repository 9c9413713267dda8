package graphql

import (
	"context"
	"errors"

	"github.com/probelab/gqlprobe/internal/domain"
)

// Error codes carried in extensions.code.
const (
	codeBadRequest      = "BAD_REQUEST"
	codeValidation      = "VALIDATION"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeNotFound        = "NOT_FOUND"
	codeInternal        = "INTERNAL"
)

// presentError maps a resolver error to a response error. Domain sentinels
// keep their message; anything else is logged and masked.
func (e *Executor) presentError(ctx context.Context, err error, path ...any) Error {
	out := Error{Path: path}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		out.Message = vErr.Error()
		out.Extensions = map[string]any{
			"code":   codeValidation,
			"fields": fieldExtensions(vErr),
		}
	case errors.Is(err, domain.ErrValidation):
		out.Message = err.Error()
		out.Extensions = map[string]any{"code": codeValidation}
	case errors.Is(err, domain.ErrUnauthorized):
		out.Message = "unauthorized"
		out.Extensions = map[string]any{"code": codeUnauthenticated}
	case errors.Is(err, domain.ErrNotFound):
		out.Message = err.Error()
		out.Extensions = map[string]any{"code": codeNotFound}
	default:
		e.log.ErrorContext(ctx, "unhandled resolver error", "error", err, "path", path)
		out.Message = "internal error"
		out.Extensions = map[string]any{"code": codeInternal}
	}
	return out
}

func fieldExtensions(vErr *domain.ValidationError) []map[string]any {
	fields := make([]map[string]any, len(vErr.Errors))
	for i, fe := range vErr.Errors {
		fields[i] = map[string]any{"field": fe.Field, "message": fe.Message}
	}
	return fields
}
