package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/render"
)

// ExtensionNamespace is the schema extension holding presentation options
// that have no OpenAPI equivalent.
const ExtensionNamespace = "x-formfield"

// lettersOnlyPattern is the pattern that maps onto the letters-only
// character restriction. Anchors are ignored when comparing.
const lettersOnlyPattern = `[a-zA-Z\-' ]+`

var (
	// ErrUnsupportedType is returned for properties that cannot become a text
	// input or radios field.
	ErrUnsupportedType = errors.New("openapi: unsupported property type")
	// ErrUnknownExtension is returned for unrecognised keys under
	// ExtensionNamespace.
	ErrUnknownExtension = errors.New("openapi: unknown extension key")
)

// FieldFromSchema converts one schema property into a field.
//
//	title        -> heading
//	description  -> hint
//	integer      -> whole number input
//	number       -> decimal number input
//	minLength    -> minimum length
//	maxLength    -> maximum length
//	minimum      -> lower bound
//	maximum      -> upper bound
//	enum         -> radios items
//	pattern      -> letters-only restriction when it matches lettersOnlyPattern
func FieldFromSchema(id string, ref *openapi3.SchemaRef) (fieldschema.Field, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return fieldschema.Field{}, errors.New("openapi: property name is required")
	}
	if ref == nil || ref.Value == nil {
		return fieldschema.Field{}, fmt.Errorf("openapi: property %q has no resolved schema", id)
	}
	src := ref.Value

	field := fieldschema.Field{
		Kind: render.KindTextInput,
		Options: model.Options{
			UniqueIdentifier: id,
			Heading:          strings.TrimSpace(src.Title),
			Hint:             strings.TrimSpace(src.Description),
		},
	}

	switch typ := schemaType(src.Type); typ {
	case "", openapi3.TypeString:
	case openapi3.TypeInteger:
		field.InputType = "1"
	case openapi3.TypeNumber:
		field.InputType = "2"
	default:
		return fieldschema.Field{}, fmt.Errorf("%w: %q is %s", ErrUnsupportedType, id, typ)
	}

	if src.MinLength > 0 {
		field.MinLength = strconv.FormatUint(src.MinLength, 10)
	}
	if src.MaxLength != nil {
		field.MaxLength = strconv.FormatUint(*src.MaxLength, 10)
	}
	if src.Min != nil {
		field.LowerBound = formatNumber(*src.Min)
	}
	if src.Max != nil {
		field.UpperBound = formatNumber(*src.Max)
	}
	if trimAnchors(src.Pattern) == lettersOnlyPattern {
		field.CharacterRestriction = "1"
	}

	if len(src.Enum) > 0 {
		field.Kind = render.KindRadios
		field.InputType = ""
		for _, value := range src.Enum {
			field.Items = append(field.Items, model.Item{Value: stringify(value)})
		}
	}

	if err := applyExtensions(&field, src.Extensions[ExtensionNamespace]); err != nil {
		return fieldschema.Field{}, fmt.Errorf("openapi: property %q: %w", id, err)
	}
	return field, nil
}

func applyExtensions(field *fieldschema.Field, raw any) error {
	if raw == nil {
		return nil
	}
	values, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("%s must be an object, got %T", ExtensionNamespace, raw)
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := values[key]
		switch key {
		case "label":
			field.FieldIdentifier = stringify(value)
		case "width":
			field.Width = stringify(value)
		case "prefix":
			field.Prefix = stringify(value)
		case "suffix":
			field.Suffix = stringify(value)
		case "spellcheck":
			field.Spellcheck = stringify(value)
		case "pageHeading":
			field.PageHeading = stringify(value)
		case "autocomplete":
			field.Autocomplete = stringify(value)
		case "characterRestriction":
			field.CharacterRestriction = stringify(value)
		case "itemText":
			if err := applyItemText(field, value); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownExtension, key)
		}
	}
	return nil
}

func applyItemText(field *fieldschema.Field, raw any) error {
	texts, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("itemText must be an object, got %T", raw)
	}
	for i, item := range field.Items {
		if text, ok := texts[item.Value]; ok {
			field.Items[i].Text = stringify(text)
		}
	}
	return nil
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, typ := range types.Slice() {
		if typ != openapi3.TypeNull {
			return typ
		}
	}
	return ""
}

func trimAnchors(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	pattern = strings.TrimPrefix(pattern, "^")
	return strings.TrimSuffix(pattern, "$")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stringify renders decoded extension values the way option files store
// them. Booleans become the "1"/"2" toggle values.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		if v {
			return "1"
		}
		return "2"
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
