package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Operation models the subset of OpenAPI operation metadata needed to build
// form definitions.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
}

// Schema is the parser-neutral view of a request body schema tree.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Description string
	Default     any
}

// Parser converts documents into operations using kin-openapi.
type Parser struct {
	validate bool
}

// ParserOption mutates parser construction.
type ParserOption func(*Parser)

// WithValidation toggles full document validation before extraction. Enabled
// by default; disable it to scaffold forms from specs that fail strict
// validation.
func WithValidation(enabled bool) ParserOption {
	return func(p *Parser) {
		p.validate = enabled
	}
}

// NewParser constructs a Parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Operations converts a Document into a map keyed by operationId. Operations
// without an explicit id key as "method:path".
func (p *Parser) Operations(ctx context.Context, doc Document) (map[string]Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: true,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document %s: %w", doc.Location(), err)
	}

	if p.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate %s: %w", doc.Location(), err)
		}
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, fmt.Errorf("openapi: document %s does not contain any paths", doc.Location())
	}

	operations := make(map[string]Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		collectOperation(operations, "GET", path, item.Get)
		collectOperation(operations, "PUT", path, item.Put)
		collectOperation(operations, "POST", path, item.Post)
		collectOperation(operations, "DELETE", path, item.Delete)
		collectOperation(operations, "PATCH", path, item.Patch)
		collectOperation(operations, "HEAD", path, item.Head)
		collectOperation(operations, "OPTIONS", path, item.Options)
		collectOperation(operations, "TRACE", path, item.Trace)
	}

	if len(operations) == 0 {
		return nil, fmt.Errorf("openapi: no operations extracted from %s", doc.Location())
	}

	return operations, nil
}

func collectOperation(target map[string]Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	target[opID] = Operation{
		ID:          opID,
		Method:      method,
		Path:        path,
		Summary:     operation.Summary,
		Description: operation.Description,
		RequestBody: extractRequestSchema(operation.RequestBody),
	}
}

func extractRequestSchema(requestBody *openapi3.RequestBodyRef) Schema {
	if requestBody == nil {
		return Schema{}
	}
	if requestBody.Value == nil {
		return Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return convertSchema(mt.Schema)
		}
	}
	for _, mt := range content {
		return convertSchema(mt.Schema)
	}
	return Schema{}
}

func convertSchema(ref *openapi3.SchemaRef) Schema {
	return convertSchemaGuarded(ref, map[*openapi3.Schema]bool{})
}

// convertSchemaGuarded tracks in-progress schema values so reference cycles
// collapse to a bare Ref instead of recursing forever.
func convertSchemaGuarded(ref *openapi3.SchemaRef, seen map[*openapi3.Schema]bool) Schema {
	if ref == nil {
		return Schema{}
	}
	if ref.Value == nil || seen[ref.Value] {
		return Schema{Ref: ref.Ref}
	}
	src := ref.Value
	seen[src] = true
	defer delete(seen, src)

	schema := Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		properties := make(map[string]Schema, len(src.Properties))
		for name, property := range src.Properties {
			properties[name] = convertSchemaGuarded(property, seen)
		}
		schema.Properties = properties
	}
	if src.Items != nil {
		items := convertSchemaGuarded(src.Items, seen)
		schema.Items = &items
	}
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
