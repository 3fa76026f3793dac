// Package schema holds the component schema model shared by the runtime
// validator and the code generator, plus the generated artifacts derived
// from it.
//
// One intermediate representation ([]Field per Definition) is the single
// source of truth: the generated type declarations and mock factories are
// emitted from it, and the runtime parse engine interprets it directly, so
// the three artifacts cannot drift apart independently.
package schema

// FieldType is the CMS field type tag of a component schema field.
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldTextarea  FieldType = "textarea"
	FieldRichtext  FieldType = "richtext"
	FieldMarkdown  FieldType = "markdown"
	FieldNumber    FieldType = "number"
	FieldBoolean   FieldType = "boolean"
	FieldDatetime  FieldType = "datetime"
	FieldAsset     FieldType = "asset"
	FieldMultilink FieldType = "multilink"
	FieldOption    FieldType = "option"
	FieldOptions   FieldType = "options"
	FieldBloks     FieldType = "bloks"
)

// Component is a block type name. The set of components is closed: every
// valid name is declared in components.gen.go and an unknown name is a
// detectable mapping miss, never silent fallthrough.
type Component string

// Field describes one component schema field.
type Field struct {
	Name      string      // field key inside the content tree
	Type      FieldType   // CMS field type tag
	Required  bool        // required fields must be present and non-nil
	Label     string      // human display name
	Whitelist []Component // allowed nested components for bloks fields; nil allows any known component
	Options   []string    // allowed values for option/options fields; nil allows any string
}

// Definition describes one block type: its name and ordered field list.
type Definition struct {
	Name   Component
	Fields []Field
}

// Block is one entry of a polymorphic block tree. The "component" key is
// the discriminator naming a Definition.
type Block = map[string]any

// ComponentKey is the discriminator key inside a content tree.
const ComponentKey = "component"

// ComponentOf extracts the discriminator from a raw block, if present.
func ComponentOf(raw map[string]any) (Component, bool) {
	name, ok := raw[ComponentKey].(string)
	if !ok || name == "" {
		return "", false
	}
	return Component(name), true
}
