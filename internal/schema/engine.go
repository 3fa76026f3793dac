package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mlehtin/storykit/internal/errors"
)

// ParseContent validates and coerces a raw content tree against the
// definition named by its component discriminator. It returns a new tree;
// the input is never mutated. Unknown components and shape mismatches are
// returned as errors for the caller to handle (the runtime validator fails
// open, the generator tests fail hard).
func ParseContent(raw map[string]any) (map[string]any, error) {
	name, ok := ComponentOf(raw)
	if !ok {
		return nil, errors.Newf("content tree has no %q discriminator", ComponentKey).
			Category(errors.CategoryValidation).
			Component("schema").
			Build()
	}

	def, ok := Definitions[name]
	if !ok {
		return nil, errors.Newf("unknown component %q: no matching definition", name).
			Category(errors.CategoryValidation).
			Context("component", string(name)).
			Component("schema").
			Build()
	}

	return Parse(def, raw)
}

// Parse validates raw against def, returning a coerced copy.
// Coercions follow the CMS's loose typing: stringified numbers and booleans
// become native values. Nested blok arrays are resolved lazily through the
// Definitions table, so mutually recursive components parse fine.
func Parse(def Definition, raw map[string]any) (map[string]any, error) {
	var issues []string
	out := make(map[string]any, len(raw))

	// Pass through metadata keys and anything the definition doesn't name.
	known := make(map[string]bool, len(def.Fields))
	for i := range def.Fields {
		known[def.Fields[i].Name] = true
	}
	for key, value := range raw {
		if !known[key] {
			out[key] = value
		}
	}

	for i := range def.Fields {
		field := &def.Fields[i]
		value, present := raw[field.Name]

		if !present || value == nil {
			if field.Required {
				issues = append(issues, fmt.Sprintf("%s: required field missing", field.Name))
			}
			continue
		}

		coerced, err := coerceField(field, value)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", field.Name, err))
			continue
		}
		out[field.Name] = coerced
	}

	if len(issues) > 0 {
		return nil, errors.Newf("component %q failed validation: %s", def.Name, strings.Join(issues, "; ")).
			Category(errors.CategoryValidation).
			Context("component", string(def.Name)).
			Context("issue_count", len(issues)).
			Component("schema").
			Build()
	}

	return out, nil
}

func coerceField(field *Field, value any) (any, error) {
	switch field.Type {
	case FieldText, FieldTextarea, FieldMarkdown, FieldDatetime:
		return coerceString(value)

	case FieldOption:
		s, err := coerceString(value)
		if err != nil {
			return nil, err
		}
		if len(field.Options) > 0 && !containsString(field.Options, s) {
			return nil, fmt.Errorf("value %q not in allowed options %v", s, field.Options)
		}
		return s, nil

	case FieldOptions:
		items, ok := value.([]any)
		if !ok {
			if strs, ok := value.([]string); ok {
				items = make([]any, len(strs))
				for i, s := range strs {
					items[i] = s
				}
			} else {
				return nil, fmt.Errorf("expected a list of strings, got %T", value)
			}
		}
		coerced := make([]any, 0, len(items))
		for _, item := range items {
			s, err := coerceString(item)
			if err != nil {
				return nil, err
			}
			if len(field.Options) > 0 && !containsString(field.Options, s) {
				return nil, fmt.Errorf("value %q not in allowed options %v", s, field.Options)
			}
			coerced = append(coerced, s)
		}
		return coerced, nil

	case FieldNumber:
		return coerceNumber(value)

	case FieldBoolean:
		return coerceBool(value)

	case FieldRichtext:
		doc, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected a richtext document, got %T", value)
		}
		return doc, nil

	case FieldAsset:
		asset, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected an asset object, got %T", value)
		}
		if _, ok := asset["filename"].(string); !ok {
			return nil, fmt.Errorf("asset object has no filename")
		}
		return asset, nil

	case FieldMultilink:
		link, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected a link object, got %T", value)
		}
		return link, nil

	case FieldBloks:
		return coerceBloks(field, value)

	default:
		return nil, fmt.Errorf("unsupported field type %q", field.Type)
	}
}

func coerceBloks(field *Field, value any) (any, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a block list, got %T", value)
	}

	coerced := make([]any, 0, len(items))
	for index, item := range items {
		block, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("block %d: expected an object, got %T", index, item)
		}

		name, ok := ComponentOf(block)
		if !ok {
			return nil, fmt.Errorf("block %d: no %q discriminator", index, ComponentKey)
		}

		if len(field.Whitelist) > 0 && !containsComponent(field.Whitelist, name) {
			return nil, fmt.Errorf("block %d: component %q not allowed here (want one of %v)", index, name, field.Whitelist)
		}

		// Lazy lookup through the table keeps cyclic definitions parseable.
		nestedDef, ok := Definitions[name]
		if !ok {
			return nil, fmt.Errorf("block %d: unknown component %q", index, name)
		}

		parsed, err := Parse(nestedDef, block)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", index, name, err)
		}
		coerced = append(coerced, parsed)
	}

	return coerced, nil
}

func coerceString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", value)
	}
	return s, nil
}

func coerceNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}

func coerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("expected a boolean, got %q", v)
		}
		return parsed, nil
	case float64:
		// The CMS serialises checkbox values as 0/1 in some exports
		if v == 0 || v == 1 {
			return v == 1, nil
		}
		return false, fmt.Errorf("expected a boolean, got %v", v)
	default:
		return false, fmt.Errorf("expected a boolean, got %T", value)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsComponent(values []Component, want Component) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
