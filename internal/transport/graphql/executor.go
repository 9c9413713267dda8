// Package graphql implements the GraphQL-over-HTTP transport: query parsing
// and validation against the embedded schema, root field dispatch, selection
// set projection with alias and fragment support, and error presentation.
//
// The engine executes wire values produced by the model package: objects are
// map[string]any keyed by schema field names, lists are []any, and deferred
// fields are model.Lazy. Introspection beyond __typename is not supported;
// consumers read the SDL directly.
package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/probelab/gqlprobe/internal/transport/graphql/model"
)

// rootResolver resolves a qualified root field, e.g. "Mutation.echo".
type rootResolver interface {
	Resolve(ctx context.Context, name string, args map[string]any) (any, error)
}

// Executor executes GraphQL requests against the schema and resolver.
type Executor struct {
	schema   *ast.Schema
	resolver rootResolver
	log      *slog.Logger
}

// NewExecutor creates an Executor. The schema comes from LoadSchema.
func NewExecutor(log *slog.Logger, schema *ast.Schema, resolver rootResolver) *Executor {
	return &Executor{
		schema:   schema,
		resolver: resolver,
		log:      log.With("component", "graphql"),
	}
}

// Execute runs one GraphQL request. Parse, validation, and operation
// selection failures produce request-level errors with nil data; resolver
// failures null the affected root field and carry a path.
func (e *Executor) Execute(ctx context.Context, req *Request) *Response {
	if req == nil || req.Query == "" {
		return &Response{Errors: []Error{{Message: "query is required"}}}
	}

	doc, err := e.parseQuery(req.Query)
	if err != nil {
		return &Response{Errors: []Error{{
			Message:    err.Error(),
			Extensions: map[string]any{"code": codeBadRequest},
		}}}
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		msg := fmt.Sprintf("operation %q not found", req.OperationName)
		if req.OperationName == "" {
			msg = "operationName is required for documents with multiple operations"
		}
		return &Response{Errors: []Error{{
			Message:    msg,
			Extensions: map[string]any{"code": codeBadRequest},
		}}}
	}
	if op.Operation == ast.Subscription {
		return &Response{Errors: []Error{{
			Message:    "subscriptions are not supported",
			Extensions: map[string]any{"code": codeBadRequest},
		}}}
	}

	vars := e.operationVariables(op, req.Variables)
	data, errs := e.executeRoot(ctx, doc, op, vars)

	return &Response{Data: data, Errors: errs}
}

// parseQuery parses and validates a query document against the schema.
// LoadQuery runs the full validation rule set, so its error list covers both
// syntax and schema violations.
func (e *Executor) parseQuery(query string) (*ast.QueryDocument, error) {
	doc, parseErrs := gqlparser.LoadQuery(e.schema, query)
	if len(parseErrs) > 0 {
		return nil, fmt.Errorf("invalid query: %s", parseErrs[0].Message)
	}
	return doc, nil
}

// operationVariables merges request variables with declared defaults.
func (e *Executor) operationVariables(op *ast.OperationDefinition, provided map[string]any) map[string]any {
	vars := make(map[string]any, len(provided))
	for k, v := range provided {
		vars[k] = v
	}
	for _, def := range op.VariableDefinitions {
		if _, ok := vars[def.Variable]; !ok && def.DefaultValue != nil {
			vars[def.Variable] = resolveValue(def.DefaultValue, nil)
		}
	}
	return vars
}

// executeRoot resolves the operation's root fields sequentially. Mutations
// rely on this ordering.
func (e *Executor) executeRoot(ctx context.Context, doc *ast.QueryDocument, op *ast.OperationDefinition, vars map[string]any) (map[string]any, []Error) {
	opType := "Query"
	if op.Operation == ast.Mutation {
		opType = "Mutation"
	}

	data := make(map[string]any)
	var errs []Error

	for _, field := range expandSelections(doc, op.SelectionSet) {
		alias := field.Alias
		if alias == "" {
			alias = field.Name
		}

		if field.Name == "__typename" {
			data[alias] = opType
			continue
		}
		if strings.HasPrefix(field.Name, "__") {
			data[alias] = nil
			errs = append(errs, Error{
				Message:    "introspection is not supported",
				Path:       []any{alias},
				Extensions: map[string]any{"code": codeBadRequest},
			})
			continue
		}

		value, err := e.resolver.Resolve(ctx, opType+"."+field.Name, e.fieldArguments(field, vars))
		if err == nil {
			value, err = e.project(ctx, doc, field.SelectionSet, value)
		}
		if err != nil {
			data[alias] = nil
			errs = append(errs, e.presentError(ctx, err, alias))
			continue
		}
		data[alias] = value
	}

	return data, errs
}

// fieldArguments extracts argument values, falling back to schema defaults.
func (e *Executor) fieldArguments(field *ast.Field, vars map[string]any) map[string]any {
	args := make(map[string]any, len(field.Definition.Arguments))
	for _, def := range field.Definition.Arguments {
		if arg := field.Arguments.ForName(def.Name); arg != nil {
			args[def.Name] = resolveValue(arg.Value, vars)
			continue
		}
		if def.DefaultValue != nil {
			args[def.Name] = resolveValue(def.DefaultValue, nil)
		}
	}
	return args
}

// project narrows a resolved value to the requested selection set.
func (e *Executor) project(ctx context.Context, doc *ast.QueryDocument, sels ast.SelectionSet, value any) (any, error) {
	if value == nil || len(sels) == 0 {
		return value, nil
	}
	switch v := value.(type) {
	case map[string]any:
		return e.projectObject(ctx, doc, sels, v)
	case []any:
		return e.projectList(ctx, doc, sels, v)
	default:
		return value, nil
	}
}

func (e *Executor) projectObject(ctx context.Context, doc *ast.QueryDocument, sels ast.SelectionSet, obj map[string]any) (map[string]any, error) {
	fields := expandSelections(doc, sels)
	return e.resolveObject(ctx, doc, fields, obj, e.beginLazies(ctx, fields, obj))
}

// projectList projects each element, but starts every element's lazy fields
// before awaiting the first one so sibling loads share a DataLoader batch.
func (e *Executor) projectList(ctx context.Context, doc *ast.QueryDocument, sels ast.SelectionSet, list []any) ([]any, error) {
	fields := expandSelections(doc, sels)

	awaits := make([]map[string]model.Await, len(list))
	for i, item := range list {
		if obj, ok := item.(map[string]any); ok {
			awaits[i] = e.beginLazies(ctx, fields, obj)
		}
	}

	out := make([]any, len(list))
	for i, item := range list {
		if obj, ok := item.(map[string]any); ok {
			projected, err := e.resolveObject(ctx, doc, fields, obj, awaits[i])
			if err != nil {
				return nil, err
			}
			out[i] = projected
			continue
		}
		projected, err := e.project(ctx, doc, sels, item)
		if err != nil {
			return nil, err
		}
		out[i] = projected
	}
	return out, nil
}

// beginLazies starts every selected lazy field of obj.
func (e *Executor) beginLazies(ctx context.Context, fields []*ast.Field, obj map[string]any) map[string]model.Await {
	var awaits map[string]model.Await
	for _, field := range fields {
		lazy, ok := obj[field.Name].(model.Lazy)
		if !ok {
			continue
		}
		if awaits == nil {
			awaits = make(map[string]model.Await)
		}
		if _, started := awaits[field.Name]; !started {
			awaits[field.Name] = lazy(ctx)
		}
	}
	return awaits
}

func (e *Executor) resolveObject(ctx context.Context, doc *ast.QueryDocument, fields []*ast.Field, obj map[string]any, awaits map[string]model.Await) (map[string]any, error) {
	result := make(map[string]any, len(fields))
	for _, field := range fields {
		alias := field.Alias
		if alias == "" {
			alias = field.Name
		}

		raw := obj[field.Name]
		if await, ok := awaits[field.Name]; ok {
			v, err := await()
			if err != nil {
				return nil, err
			}
			raw = v
		}

		projected, err := e.project(ctx, doc, field.SelectionSet, raw)
		if err != nil {
			return nil, err
		}
		result[alias] = projected
	}
	return result, nil
}

// expandSelections flattens fragment spreads and inline fragments into the
// field list. Type conditions are not checked; the schema has no interfaces
// or unions, so validation already guarantees the fields apply.
func expandSelections(doc *ast.QueryDocument, sels ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, sel := range sels {
		switch s := sel.(type) {
		case *ast.Field:
			fields = append(fields, s)
		case *ast.FragmentSpread:
			if frag := doc.Fragments.ForName(s.Name); frag != nil {
				fields = append(fields, expandSelections(doc, frag.SelectionSet)...)
			}
		case *ast.InlineFragment:
			fields = append(fields, expandSelections(doc, s.SelectionSet)...)
		}
	}
	return fields
}

// resolveValue converts an AST value to a Go value. Variables resolve from
// the request's variables map; nil vars means literals only.
func resolveValue(value *ast.Value, vars map[string]any) any {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case ast.Variable:
		if vars == nil {
			return nil
		}
		return vars[value.Raw]
	case ast.IntValue:
		n, err := strconv.ParseInt(value.Raw, 10, 64)
		if err != nil {
			return nil
		}
		return n
	case ast.FloatValue:
		f, err := strconv.ParseFloat(value.Raw, 64)
		if err != nil {
			return nil
		}
		return f
	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return value.Raw
	case ast.BooleanValue:
		return value.Raw == "true"
	case ast.NullValue:
		return nil
	case ast.ListValue:
		list := make([]any, 0, len(value.Children))
		for _, child := range value.Children {
			list = append(list, resolveValue(child.Value, vars))
		}
		return list
	case ast.ObjectValue:
		obj := make(map[string]any, len(value.Children))
		for _, child := range value.Children {
			obj[child.Name] = resolveValue(child.Value, vars)
		}
		return obj
	default:
		return value.Raw
	}
}
