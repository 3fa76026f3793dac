package codegen

import (
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/mlehtin/storykit/internal/errors"
	"github.com/mlehtin/storykit/internal/schema"
)

// header is the marker every generated file starts with.
const header = "// Code generated by storykit generate. DO NOT EDIT."

// renderComponent is the per-component view shared by all three templates.
// Deriving every artifact from this one model keeps the enum, the structs and
// the mock factories in lockstep by construction.
type renderComponent struct {
	Name      string // schema name: "cta_banner"
	ConstName string // enum constant: "ComponentCTABanner"
	TypeName  string // Go type: "CTABanner"
	Fields    []renderField
}

type renderField struct {
	Name    string
	GoName  string
	GoType  string
	JSONTag string
	Literal string // Definitions table entry
	Mock    string // mock factory value expression
}

type renderModel struct {
	Components     []renderComponent
	NeedsStoryblok bool
}

func buildRenderModel(defs []schema.Definition) renderModel {
	m := renderModel{Components: make([]renderComponent, 0, len(defs))}
	for _, def := range defs {
		rc := renderComponent{
			Name:      string(def.Name),
			ConstName: "Component" + goName(string(def.Name)),
			TypeName:  goName(string(def.Name)),
		}
		for _, f := range def.Fields {
			if f.Type == schema.FieldAsset || f.Type == schema.FieldMultilink {
				m.NeedsStoryblok = true
			}
			rc.Fields = append(rc.Fields, renderField{
				Name:    f.Name,
				GoName:  goName(f.Name),
				GoType:  goFieldType(f.Type),
				JSONTag: jsonTag(f),
				Literal: fieldLiteral(f),
				Mock:    mockExpr(defs, def, f),
			})
		}
		m.Components = append(m.Components, rc)
	}
	return m
}

func goFieldType(t schema.FieldType) string {
	switch t {
	case schema.FieldText, schema.FieldTextarea, schema.FieldMarkdown,
		schema.FieldDatetime, schema.FieldOption:
		return "string"
	case schema.FieldRichtext:
		return "map[string]any"
	case schema.FieldNumber:
		return "float64"
	case schema.FieldBoolean:
		return "bool"
	case schema.FieldAsset:
		return "*storyblok.Asset"
	case schema.FieldMultilink:
		return "*storyblok.Link"
	case schema.FieldOptions:
		return "[]string"
	case schema.FieldBloks:
		return "[]Block"
	}
	return "any"
}

func jsonTag(f schema.Field) string {
	if f.Required {
		return fmt.Sprintf("`json:%q`", f.Name)
	}
	return fmt.Sprintf("`json:%q`", f.Name+",omitempty")
}

// fieldLiteral renders one Definitions table entry. Fields with a component
// whitelist span multiple lines, matching what gofmt settles on.
func fieldLiteral(f schema.Field) string {
	var b strings.Builder
	head := fmt.Sprintf("Name: %q, Type: %s", f.Name, fieldConstName(f.Type))
	if f.Required {
		head += ", Required: true"
	}
	head += fmt.Sprintf(", Label: %q", f.Label)
	if len(f.Options) > 0 {
		quoted := make([]string, len(f.Options))
		for i, o := range f.Options {
			quoted[i] = fmt.Sprintf("%q", o)
		}
		head += fmt.Sprintf(", Options: []string{%s}", strings.Join(quoted, ", "))
	}
	if len(f.Whitelist) == 0 {
		fmt.Fprintf(&b, "{%s},", head)
		return b.String()
	}
	consts := make([]string, len(f.Whitelist))
	for i, w := range f.Whitelist {
		consts[i] = "Component" + goName(string(w))
	}
	fmt.Fprintf(&b, "{\n\t%s,\n\tWhitelist: []Component{%s},\n},", head, strings.Join(consts, ", "))
	return b.String()
}

func fieldConstName(t schema.FieldType) string {
	tag := string(t)
	return "Field" + strings.ToUpper(tag[:1]) + tag[1:]
}

// mockExpr renders the value expression for one field in a mock factory.
// Scalar values come from name and type heuristics; nested blok arrays pull
// in sibling factories for up to two whitelisted leaf components.
func mockExpr(all []schema.Definition, def schema.Definition, f schema.Field) string {
	last := lastWord(f.Name)
	switch f.Type {
	case schema.FieldText:
		switch {
		case strings.HasSuffix(f.Name, "email"):
			prefix := strings.TrimSuffix(strings.TrimSuffix(f.Name, "email"), "_")
			if prefix == "" {
				prefix = "contact"
			}
			return fmt.Sprintf("%q", prefix+"@example.com")
		case last == "title":
			return `"Sample Title"`
		case last == "name":
			return `"Sample Name"`
		case last == "label":
			return `"Sample Label"`
		case last == "headline":
			return `"Sample Headline"`
		case last == "role":
			return `"Sample Role"`
		default:
			return fmt.Sprintf("%q", "Sample "+last+" copy.")
		}
	case schema.FieldTextarea:
		return fmt.Sprintf("%q", "Sample "+last+" copy for previews and tests.")
	case schema.FieldMarkdown:
		return fmt.Sprintf("%q", "Sample "+last+" copy.")
	case schema.FieldRichtext:
		return fmt.Sprintf("mockRichtext(%q)", "Sample "+last+" copy.")
	case schema.FieldNumber:
		return "float64(5)"
	case schema.FieldBoolean:
		return "false"
	case schema.FieldDatetime:
		return `"2024-01-15T09:30:00Z"`
	case schema.FieldAsset:
		return fmt.Sprintf("mockAsset(%q)", strings.ReplaceAll(f.Name, "_", "-"))
	case schema.FieldMultilink:
		return "mockLink()"
	case schema.FieldOption:
		if len(f.Options) > 0 {
			return fmt.Sprintf("%q", f.Options[0])
		}
		return `"option-a"`
	case schema.FieldOptions:
		if len(f.Options) > 0 {
			quoted := make([]string, 0, 2)
			for _, o := range f.Options[:min(2, len(f.Options))] {
				quoted = append(quoted, fmt.Sprintf("%q", o))
			}
			return fmt.Sprintf("[]any{%s}", strings.Join(quoted, ", "))
		}
		return `[]any{"news", "product"}`
	case schema.FieldBloks:
		return mockBloksExpr(all, def, f)
	}
	return "nil"
}

// mockBloksExpr picks up to two nestable leaf components (no blok fields of
// their own, so factories never recurse) from the field's whitelist, or from
// the whole component set when the field is unrestricted.
func mockBloksExpr(all []schema.Definition, def schema.Definition, f schema.Field) string {
	candidates := make([]schema.Component, 0, len(f.Whitelist))
	if len(f.Whitelist) > 0 {
		candidates = append(candidates, f.Whitelist...)
	} else {
		for _, d := range all {
			if d.Name != def.Name {
				candidates = append(candidates, d.Name)
			}
		}
	}

	byName := make(map[schema.Component]schema.Definition, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}

	var calls []string
	for _, name := range candidates {
		d, ok := byName[name]
		if !ok || hasBloksField(d) {
			continue
		}
		calls = append(calls, "Mock"+goName(string(name))+"(),")
		if len(calls) == 2 {
			break
		}
	}
	if len(calls) == 0 {
		return "[]any{}"
	}
	return fmt.Sprintf("[]any{\n\t%s\n}", strings.Join(calls, "\n\t"))
}

func hasBloksField(d schema.Definition) bool {
	for _, f := range d.Fields {
		if f.Type == schema.FieldBloks {
			return true
		}
	}
	return false
}

func lastWord(name string) string {
	parts := strings.Split(name, "_")
	return parts[len(parts)-1]
}

var componentsTemplate = template.Must(template.New("components").Parse(header + `

package schema

// Component names known to this build. The enumeration is closed: content
// referencing any other name fails validation as a mapping miss.
const (
{{- range .Components}}
	{{.ConstName}} Component = "{{.Name}}"
{{- end}}
)

// Components lists every known component name in stable order.
var Components = []Component{
{{- range .Components}}
	{{.ConstName}},
{{- end}}
}

// Definitions maps every known component name to its schema definition.
var Definitions = map[Component]Definition{
{{- range .Components}}
	{{.ConstName}}: {
		Name: {{.ConstName}},
		Fields: []Field{
{{- range .Fields}}
			{{.Literal}}
{{- end}}
		},
	},
{{- end}}
}
`))

var typesTemplate = template.Must(template.New("types").Parse(header + `

package schema
{{if .NeedsStoryblok}}
import (
	"github.com/mlehtin/storykit/internal/storyblok"
)
{{end}}
{{- range .Components}}
// {{.TypeName}} is the typed declaration of the "{{.Name}}" component.
type {{.TypeName}} struct {
	UID       string ` + "`json:\"_uid\"`" + `
	Component string ` + "`json:\"component\"`" + `
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{.JSONTag}}
{{- end}}
}

{{end -}}
`))

var mocksTemplate = template.Must(template.New("mocks").Parse(header + `

package schema

import (
	"github.com/google/uuid"
)

// Mocks maps every known component name to its mock factory.
var Mocks = map[Component]func() Block{
{{- range .Components}}
	{{.ConstName}}: Mock{{.TypeName}},
{{- end}}
}

func mockAsset(name string) Block {
	return Block{
		"id":        int64(4711),
		"filename":  "https://a.storyblok.com/f/12345/1600x900/abcdef0123/" + name + ".jpg",
		"alt":       "Placeholder " + name,
		"fieldtype": "asset",
	}
}

func mockLink() Block {
	return Block{
		"id":         "",
		"url":        "https://example.com/landing",
		"linktype":   "url",
		"fieldtype":  "multilink",
		"cached_url": "https://example.com/landing",
	}
}

func mockRichtext(text string) Block {
	return Block{
		"type": "doc",
		"content": []any{
			Block{
				"type": "paragraph",
				"content": []any{
					Block{"type": "text", "text": text},
				},
			},
		},
	}
}
{{range .Components}}
// Mock{{.TypeName}} produces a structurally valid "{{.Name}}" block.
func Mock{{.TypeName}}() Block {
	return Block{
		"_uid":      uuid.NewString(),
		"component": string({{.ConstName}}),
{{- range .Fields}}
		"{{.Name}}": {{.Mock}},
{{- end}}
	}
}
{{end -}}
`))

// renderFile executes tmpl over the model and gofmts the result.
func renderFile(tmpl *template.Template, model renderModel) ([]byte, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, model); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryCodegen).
			Component("codegen").
			Context("operation", "render_template").
			Context("template", tmpl.Name()).
			Build()
	}
	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryCodegen).
			Component("codegen").
			Context("operation", "format_generated_source").
			Context("template", tmpl.Name()).
			Build()
	}
	return formatted, nil
}
