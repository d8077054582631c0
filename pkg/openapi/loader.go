package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
)

// ErrSchemaNotFound is returned when the named component schema is absent.
var ErrSchemaNotFound = errors.New("openapi: schema not found")

// Load parses an OpenAPI document and converts the properties of the
// component schema called schemaName into an option document. Properties
// with an unsupported type are skipped.
func Load(ctx context.Context, data []byte, schemaName string, options ...Option) (fieldschema.Document, error) {
	if err := ctx.Err(); err != nil {
		return fieldschema.Document{}, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fieldschema.Document{}, errors.New("openapi: document payload is empty")
	}
	cfg := newConfig(options...)

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return fieldschema.Document{}, fmt.Errorf("openapi: load document: %w", err)
	}
	return convert(ctx, spec, schemaName, cfg)
}

// LoadFile reads the document at path, from the configured file system when
// one was supplied, and converts it like Load.
func LoadFile(ctx context.Context, path, schemaName string, options ...Option) (fieldschema.Document, error) {
	if err := ctx.Err(); err != nil {
		return fieldschema.Document{}, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return fieldschema.Document{}, errors.New("openapi: document path is required")
	}
	cfg := newConfig(options...)

	if cfg.files != nil {
		data, err := fs.ReadFile(cfg.files, path)
		if err != nil {
			return fieldschema.Document{}, fmt.Errorf("openapi: read %s: %w", path, err)
		}
		return Load(ctx, data, schemaName, options...)
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return fieldschema.Document{}, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return convert(ctx, spec, schemaName, cfg)
}

// SchemaNames lists the component schemas a document defines, sorted.
func SchemaNames(ctx context.Context, data []byte) ([]string, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Components == nil {
		return nil, nil
	}
	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func convert(ctx context.Context, spec *openapi3.T, schemaName string, cfg *config) (fieldschema.Document, error) {
	if cfg.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return fieldschema.Document{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	schemaName = strings.TrimSpace(schemaName)
	var ref *openapi3.SchemaRef
	if spec.Components != nil {
		ref = spec.Components.Schemas[schemaName]
	}
	if ref == nil || ref.Value == nil {
		return fieldschema.Document{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, schemaName)
	}

	doc := fieldschema.Document{
		Page:   schemaName,
		Fields: make(map[string]fieldschema.Field, len(ref.Value.Properties)),
	}
	if title := strings.TrimSpace(ref.Value.Title); title != "" {
		doc.Page = title
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return fieldschema.Document{}, err
		}
		field, err := FieldFromSchema(name, ref.Value.Properties[name])
		if errors.Is(err, ErrUnsupportedType) {
			cfg.logger.Warn().Str("schema", schemaName).Str("property", name).Err(err).Msg("property skipped")
			continue
		}
		if err != nil {
			return fieldschema.Document{}, err
		}
		doc.Fields[name] = field
	}
	return doc, nil
}
