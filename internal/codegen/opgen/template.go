package opgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// fileTemplate lays out the generated bindings file. Struct bodies arrive
// pre-rendered with gofmt column alignment, so go/format leaves them as-is.
const fileTemplate = `// Code generated by opgen. DO NOT EDIT.

package {{.Package}}

import (
	"context"
{{- if .NeedsTime}}
	"time"
{{- end}}
)
{{range .Operations}}
const {{.ConstName}} = ` + "`{{.Document}}`" + `
{{if .HasVariables}}
// {{.Name}}Variables are the inputs of the {{.Name}} {{.Kind}}.
type {{.Name}}Variables struct {
{{.VariableFields}}}
{{end}}
// {{.Name}} executes the {{.Name}} {{.Kind}} against the configured endpoint.
func (c *Client) {{.Name}}(ctx context.Context{{if .HasVariables}}, vars {{.Name}}Variables{{end}}) (*{{.Name}}Response, error) {
	var resp {{.Name}}Response
	if err := c.Do(ctx, {{.ConstName}}, {{if .HasVariables}}vars{{else}}nil{{end}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
{{range .Types}}
type {{.Name}} struct {
{{.FieldLines}}}
{{end}}{{end}}`

type fileData struct {
	Package    string
	NeedsTime  bool
	Operations []opData
}

type opData struct {
	Name           string
	Kind           string
	ConstName      string
	Document       string
	HasVariables   bool
	VariableFields string
	Types          []typeData
}

type typeData struct {
	Name       string
	FieldLines string
}

func (g *generator) render(pkgName string) ([]byte, error) {
	data := fileData{Package: pkgName, NeedsTime: g.needsTime}
	for _, op := range g.operations {
		od := opData{
			Name:           op.Name,
			Kind:           op.Kind,
			ConstName:      op.ConstName,
			Document:       op.Document,
			HasVariables:   op.HasVariables,
			VariableFields: renderFields(op.Variables),
		}
		for _, decl := range op.Types {
			od.Types = append(od.Types, typeData{
				Name:       decl.Name,
				FieldLines: renderFields(decl.Fields),
			})
		}
		data.Operations = append(data.Operations, od)
	}

	tmpl, err := template.New("bindings").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// renderFields emits struct fields with gofmt-style column alignment.
func renderFields(fields []structField) string {
	nameW, typeW := 0, 0
	for _, f := range fields {
		if len(f.Name) > nameW {
			nameW = len(f.Name)
		}
		if len(f.Type) > typeW {
			typeW = len(f.Type)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString("\t")
		b.WriteString(f.Name)
		b.WriteString(strings.Repeat(" ", nameW-len(f.Name)+1))
		b.WriteString(f.Type)
		b.WriteString(strings.Repeat(" ", typeW-len(f.Type)+1))
		b.WriteString(f.Tag)
		b.WriteString("\n")
	}
	return b.String()
}
