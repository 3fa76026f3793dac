package codegen

import (
	"sort"
	"strings"

	"github.com/mlehtin/storykit/internal/schema"
)

// fieldTypes maps management API type tags to the engine's field types.
// Tags outside this table (tabs, sections, plugin fields) carry no content
// and are dropped from the definition.
var fieldTypes = map[string]schema.FieldType{
	"text":      schema.FieldText,
	"textarea":  schema.FieldTextarea,
	"richtext":  schema.FieldRichtext,
	"markdown":  schema.FieldMarkdown,
	"number":    schema.FieldNumber,
	"boolean":   schema.FieldBoolean,
	"datetime":  schema.FieldDatetime,
	"asset":     schema.FieldAsset,
	"multilink": schema.FieldMultilink,
	"option":    schema.FieldOption,
	"options":   schema.FieldOptions,
	"bloks":     schema.FieldBloks,
}

// buildDefinitions converts the management API component list into the shared
// field representation all three emitters derive from. Components are sorted
// by name and fields by schema position, so the output, and therefore the
// content hash, is independent of API response ordering.
func buildDefinitions(components []ManagementComponent) []schema.Definition {
	defs := make([]schema.Definition, 0, len(components))
	for _, comp := range components {
		def := schema.Definition{Name: schema.Component(comp.Name)}

		names := make([]string, 0, len(comp.Schema))
		for name := range comp.Schema {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			fi, fj := comp.Schema[names[i]], comp.Schema[names[j]]
			if fi.Pos != fj.Pos {
				return fi.Pos < fj.Pos
			}
			return names[i] < names[j]
		})

		for _, name := range names {
			raw := comp.Schema[name]
			ft, ok := fieldTypes[raw.Type]
			if !ok {
				logger.Debug("Skipping unsupported field type",
					"component", comp.Name, "field", name, "type", raw.Type)
				continue
			}

			field := schema.Field{
				Name:     name,
				Type:     ft,
				Required: raw.Required,
				Label:    raw.DisplayName,
			}
			if field.Label == "" {
				field.Label = humanize(name)
			}
			if ft == schema.FieldBloks && raw.RestrictComponents {
				for _, w := range raw.ComponentWhitelist {
					field.Whitelist = append(field.Whitelist, schema.Component(w))
				}
			}
			if ft == schema.FieldOption || ft == schema.FieldOptions {
				for _, o := range raw.Options {
					field.Options = append(field.Options, o.Value)
				}
			}
			def.Fields = append(def.Fields, field)
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// initialisms are kept uppercase in generated identifiers and labels.
var initialisms = map[string]string{
	"uid": "UID",
	"id":  "ID",
	"cta": "CTA",
	"seo": "SEO",
	"og":  "OG",
	"url": "URL",
}

// goName converts a snake_case schema name into an exported Go identifier:
// cta_label becomes CTALabel, site_settings becomes SiteSettings.
func goName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(name, "_"), "_") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[part]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// humanize renders a schema name as a display label: default_og_image becomes
// "Default OG image".
func humanize(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if up, ok := initialisms[part]; ok {
			parts[i] = up
			continue
		}
		if i == 0 && part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
