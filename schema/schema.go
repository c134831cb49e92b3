package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// InputSchemaFor builds a JSON Schema representation of a struct type, used to
// declare tool inputs without hand-writing schema documents.
func InputSchemaFor(v any) (mcpschema.ToolInputSchema, error) {
	var ret mcpschema.ToolInputSchema
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ret, fmt.Errorf("expected a struct type, got %s", t.Kind())
	}
	properties, required := structToProperties(t)
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return ret, err
	}
	if err = json.Unmarshal(data, &ret); err != nil {
		return ret, err
	}
	return ret, nil
}

// schemaForTypeInternal returns a JSON schema fragment for a given reflect.Type.
// The inSlice flag is used to determine if we are processing an element inside a slice.
func schemaForTypeInternal(t reflect.Type, inSlice bool) map[string]interface{} {
	schema := make(map[string]interface{})

	// Special handling for time.Time: treat as ISO 8601 string.
	if t == reflect.TypeOf(time.Time{}) {
		schema["type"] = "string"
		schema["format"] = "date-time"
		return schema
	}

	// Handle pointer types.
	if t.Kind() == reflect.Ptr {
		schema = schemaForTypeInternal(t.Elem(), inSlice)
		if !inSlice {
			schema["nullable"] = true
		}
		return schema
	}

	switch t.Kind() {
	case reflect.Bool:
		schema["type"] = "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema["type"] = "integer"
	case reflect.Float32, reflect.Float64:
		schema["type"] = "number"
	case reflect.String:
		schema["type"] = "string"
	case reflect.Slice, reflect.Array:
		schema["type"] = "array"
		schema["items"] = schemaForTypeInternal(t.Elem(), true)
	case reflect.Map:
		schema["type"] = "object"
		schema["additionalProperties"] = schemaForTypeInternal(t.Elem(), false)
	case reflect.Struct:
		schema["type"] = "object"
		properties, required := structToProperties(t)
		schema["properties"] = properties
		if len(required) > 0 {
			schema["required"] = required
		}
	default:
		// Fallback to string type.
		schema["type"] = "string"
	}
	return schema
}

func schemaForType(t reflect.Type) map[string]interface{} {
	return schemaForTypeInternal(t, false)
}

// structToProperties converts a struct type into schema properties and required fields.
func structToProperties(t reflect.Type) (map[string]interface{}, []string) {
	properties := make(map[string]interface{})
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fieldName, omitempty, ignore := parseJSONTag(field)
		if ignore {
			continue
		}
		properties[fieldName] = schemaForType(field.Type)
		if field.Type.Kind() != reflect.Ptr && !omitempty {
			required = append(required, fieldName)
		}
	}
	return properties, required
}

func parseJSONTag(field reflect.StructField) (name string, omitempty, ignore bool) {
	name = field.Name
	tag := field.Tag.Get("json")
	if tag == "" {
		return name, false, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" {
		return name, false, true
	}
	if parts[0] != "" {
		name = parts[0]
	}
	for _, part := range parts[1:] {
		if part == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}
