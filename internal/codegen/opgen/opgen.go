// Package opgen generates typed Go bindings for GraphQL operation documents.
// Each .graphql file holds one named operation (plus any fragments it uses);
// the generator validates it against the SDL schema and emits, per operation,
// the document as a constant, a variables struct, a response struct tree
// mirroring the selection set, and a method on *gqlclient.Client. Output is
// gofmt-formatted and deterministic: operations are sorted by name.
package opgen

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Generate reads the SDL schema and every .graphql document under opsDir and
// returns the generated bindings file for the given package.
func Generate(schemaPath, opsDir, pkgName string) ([]byte, error) {
	schemaSrc, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: filepath.Base(schemaPath), Input: string(schemaSrc)})
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	entries, err := os.ReadDir(opsDir)
	if err != nil {
		return nil, fmt.Errorf("read operations dir: %w", err)
	}

	g := &generator{schema: schema}
	seen := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".graphql") {
			continue
		}
		src, err := os.ReadFile(filepath.Join(opsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		op, err := g.buildOperation(entry.Name(), string(src))
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[op.Name]; ok {
			return nil, fmt.Errorf("%s: operation %s already defined in %s", entry.Name(), op.Name, prev)
		}
		seen[op.Name] = entry.Name()
		g.operations = append(g.operations, op)
	}

	if len(g.operations) == 0 {
		return nil, fmt.Errorf("no .graphql operations found in %s", opsDir)
	}

	sort.Slice(g.operations, func(i, j int) bool {
		return g.operations[i].Name < g.operations[j].Name
	})

	src, err := g.render(pkgName)
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

type generator struct {
	schema     *ast.Schema
	operations []*operation
	needsTime  bool
}

type operation struct {
	Name         string
	Kind         string
	ConstName    string
	Document     string
	HasVariables bool
	Variables    []structField
	Types        []*typeDecl
}

type typeDecl struct {
	Name    string
	GQLType string
	Fields  []structField
}

type structField struct {
	Name string
	Type string
	Tag  string
}

// buildOperation validates one document and derives its bindings.
func (g *generator) buildOperation(filename, src string) (*operation, error) {
	doc, parseErrs := gqlparser.LoadQuery(g.schema, src)
	if len(parseErrs) > 0 {
		return nil, fmt.Errorf("%s: %s", filename, parseErrs[0].Message)
	}
	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("%s: expected exactly one operation, found %d", filename, len(doc.Operations))
	}

	opDef := doc.Operations[0]
	if opDef.Name == "" {
		return nil, fmt.Errorf("%s: anonymous operations are not supported", filename)
	}
	if opDef.Operation == ast.Subscription {
		return nil, fmt.Errorf("%s: subscriptions are not supported", filename)
	}

	op := &operation{
		Name:      opDef.Name,
		Kind:      string(opDef.Operation),
		ConstName: lowerFirst(opDef.Name) + "Document",
		Document:  strings.TrimSpace(src),
	}

	for _, vd := range opDef.VariableDefinitions {
		goType, err := g.inputGoType(vd.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: variable $%s: %w", filename, vd.Variable, err)
		}
		tag := fmt.Sprintf("`json:%q`", vd.Variable)
		if !vd.Type.NonNull {
			tag = fmt.Sprintf("`json:%q`", vd.Variable+",omitempty")
		}
		op.Variables = append(op.Variables, structField{
			Name: goFieldName(vd.Variable),
			Type: goType,
			Tag:  tag,
		})
	}
	op.HasVariables = len(op.Variables) > 0

	b := &opBuilder{gen: g, op: op, doc: doc}
	if err := b.buildResponse(opDef); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return op, nil
}

// inputGoType maps a variable type. Only scalars and lists of scalars are
// supported; the schema defines no input objects.
func (g *generator) inputGoType(t *ast.Type) (string, error) {
	if t.Elem != nil {
		inner, err := g.inputGoType(t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + inner, nil
	}
	goType, ok := scalarGoType(t.NamedType)
	if !ok {
		return "", fmt.Errorf("unsupported input type %s", t.NamedType)
	}
	if t.NamedType == "DateTime" {
		g.needsTime = true
	}
	if !t.NonNull {
		goType = "*" + goType
	}
	return goType, nil
}

// opBuilder accumulates the response struct tree of one operation.
type opBuilder struct {
	gen *generator
	op  *operation
	doc *ast.QueryDocument
}

func (b *opBuilder) buildResponse(opDef *ast.OperationDefinition) error {
	decl := &typeDecl{Name: b.op.Name + "Response"}
	b.op.Types = append(b.op.Types, decl)

	fields, err := b.selectionFields(opDef.SelectionSet)
	if err != nil {
		return err
	}
	decl.Fields = fields
	return nil
}

func (b *opBuilder) selectionFields(sels ast.SelectionSet) ([]structField, error) {
	var fields []structField
	for _, f := range expandFields(b.doc, sels) {
		alias := f.Alias
		if alias == "" {
			alias = f.Name
		}

		var goType string
		if f.Name == "__typename" {
			goType = "string"
		} else {
			var err error
			goType, err = b.typeRef(f.Definition.Type, f.SelectionSet)
			if err != nil {
				return nil, err
			}
		}

		fields = append(fields, structField{
			Name: goFieldName(alias),
			Type: goType,
			Tag:  fmt.Sprintf("`json:%q`", alias),
		})
	}
	return fields, nil
}

func (b *opBuilder) typeRef(t *ast.Type, sels ast.SelectionSet) (string, error) {
	if t.Elem != nil {
		inner, err := b.typeRef(t.Elem, sels)
		if err != nil {
			return "", err
		}
		return "[]" + inner, nil
	}

	if goType, ok := scalarGoType(t.NamedType); ok {
		if t.NamedType == "DateTime" {
			b.gen.needsTime = true
		}
		if !t.NonNull {
			goType = "*" + goType
		}
		return goType, nil
	}

	name, err := b.ensureDecl(t.NamedType, sels)
	if err != nil {
		return "", err
	}
	if !t.NonNull {
		return "*" + name, nil
	}
	return name, nil
}

// ensureDecl creates (or reuses) the struct for an object type selection.
// One struct per operation and GraphQL type keeps names stable; selecting
// the same type twice with different fields is rejected.
func (b *opBuilder) ensureDecl(gqlType string, sels ast.SelectionSet) (string, error) {
	name := b.op.Name + gqlType

	fields, err := b.selectionFields(sels)
	if err != nil {
		return "", err
	}

	for _, existing := range b.op.Types {
		if existing.Name != name {
			continue
		}
		if !fieldsEqual(existing.Fields, fields) {
			return "", fmt.Errorf("type %s selected twice with different fields", gqlType)
		}
		return name, nil
	}

	b.op.Types = append(b.op.Types, &typeDecl{Name: name, GQLType: gqlType, Fields: fields})
	return name, nil
}

func fieldsEqual(a, b []structField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// expandFields flattens fragment spreads and inline fragments.
func expandFields(doc *ast.QueryDocument, sels ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, sel := range sels {
		switch s := sel.(type) {
		case *ast.Field:
			fields = append(fields, s)
		case *ast.FragmentSpread:
			if frag := doc.Fragments.ForName(s.Name); frag != nil {
				fields = append(fields, expandFields(doc, frag.SelectionSet)...)
			}
		case *ast.InlineFragment:
			fields = append(fields, expandFields(doc, s.SelectionSet)...)
		}
	}
	return fields
}

func scalarGoType(name string) (string, bool) {
	switch name {
	case "String", "ID", "UUID":
		return "string", true
	case "Int":
		return "int", true
	case "Float":
		return "float64", true
	case "Boolean":
		return "bool", true
	case "DateTime":
		return "time.Time", true
	default:
		return "", false
	}
}

// goFieldName converts a GraphQL name to an exported Go identifier.
func goFieldName(name string) string {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return "X"
	}
	name = strings.ToUpper(name[:1]) + name[1:]
	if strings.HasSuffix(name, "Id") {
		name = name[:len(name)-2] + "ID"
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
