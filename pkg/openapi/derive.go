package openapi

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldref/pkg/formspec"
)

// Source identifies an OpenAPI document to derive a declaration from.
type Source struct {
	path string
	data []byte
}

// SourceFromFile returns a Source pointing to a document on disk.
func SourceFromFile(path string) Source {
	return Source{path: strings.TrimSpace(path)}
}

// SourceFromBytes returns a Source wrapping an in-memory document.
func SourceFromBytes(data []byte) Source {
	return Source{data: data}
}

// DeriveForm builds a form declaration from the request body of the named
// operation. Scalar properties become fields: enumerated strings map to radio
// groups, password formats to password inputs, long text formats to
// textareas, everything else to plain text inputs. Object and array
// properties are skipped; handles carry flat text values.
func DeriveForm(ctx context.Context, src Source, operationID string) (formspec.Form, error) {
	if operationID = strings.TrimSpace(operationID); operationID == "" {
		return formspec.Form{}, fmt.Errorf("openapi: operation id is required")
	}

	raw := src.data
	if len(raw) == 0 {
		if src.path == "" {
			return formspec.Form{}, fmt.Errorf("openapi: source is empty")
		}
		data, err := os.ReadFile(src.path)
		if err != nil {
			return formspec.Form{}, fmt.Errorf("openapi: read %s: %w", src.path, err)
		}
		raw = data
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return formspec.Form{}, fmt.Errorf("openapi: load document: %w", err)
	}

	method, path, operation := findOperation(spec, operationID)
	if operation == nil {
		return formspec.Form{}, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return formspec.Form{}, fmt.Errorf("openapi: operation %q has no form-capable request body", operationID)
	}

	form := formspec.Form{
		ID:     operationID,
		Title:  strings.TrimSpace(operation.Summary),
		Method: method,
		Action: path,
		Fields: propertiesToFields(schema),
	}
	if err := form.Validate(); err != nil {
		return formspec.Form{}, fmt.Errorf("openapi: operation %q: %w", operationID, err)
	}
	return form, nil
}

func findOperation(spec *openapi3.T, operationID string) (method, path string, op *openapi3.Operation) {
	if spec.Paths == nil {
		return "", "", nil
	}
	for p, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for m, candidate := range item.Operations() {
			if candidate != nil && candidate.OperationID == operationID {
				return m, p, candidate
			}
		}
	}
	return "", "", nil
}

func requestSchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// propertiesToFields flattens the schema's scalar properties into an ordered
// field list. kin-openapi stores properties in a map, so ordering is imposed
// here: required properties first in their declared order, the rest
// alphabetically.
func propertiesToFields(schema *openapi3.Schema) []formspec.Field {
	ordered := make([]string, 0, len(schema.Properties))
	seen := make(map[string]struct{}, len(schema.Properties))

	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; ok {
			if _, dup := seen[name]; !dup {
				ordered = append(ordered, name)
				seen[name] = struct{}{}
			}
		}
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)

	fields := make([]formspec.Field, 0, len(ordered))
	for _, name := range ordered {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if field, ok := propertyToField(name, ref.Value); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

func propertyToField(name string, prop *openapi3.Schema) (formspec.Field, bool) {
	switch schemaType(prop) {
	case "object", "array":
		return formspec.Field{}, false
	}

	field := formspec.Field{
		Name: name,
		Kind: formspec.KindText,
		Help: strings.TrimSpace(prop.Description),
	}
	if title := strings.TrimSpace(prop.Title); title != "" {
		field.Label = title
	}
	if prop.Default != nil {
		field.Default = fmt.Sprint(prop.Default)
	}

	switch {
	case len(prop.Enum) > 0:
		field.Kind = formspec.KindRadio
		for _, value := range prop.Enum {
			field.Options = append(field.Options, formspec.Option{Value: fmt.Sprint(value)})
		}
	case strings.EqualFold(prop.Format, "password"):
		field.Kind = formspec.KindPassword
	case strings.EqualFold(prop.Format, "textarea"), strings.EqualFold(prop.Format, "markdown"):
		field.Kind = formspec.KindTextarea
	}
	return field, true
}

func schemaType(prop *openapi3.Schema) string {
	if prop.Type == nil {
		return ""
	}
	values := prop.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
