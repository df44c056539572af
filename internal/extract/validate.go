package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxSchemaDepth is the deepest object nesting the provider accepts.
// Extractor payloads are intentionally shallow; normalization adds the
// nesting afterwards.
const MaxSchemaDepth = 3

// ValidateAgainstSchema validates data against schemaMap.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// schemaDepth measures object/array nesting of a JSON-schema map.
func schemaDepth(schema map[string]any) int {
	depth := 1
	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if sub, ok := p.(map[string]any); ok {
				if d := subschemaDepth(sub); depth < 1+d {
					depth = 1 + d
				}
			}
		}
	}
	return depth
}

func subschemaDepth(prop map[string]any) int {
	switch prop["type"] {
	case "object":
		return schemaDepth(prop)
	case "array":
		if items, ok := prop["items"].(map[string]any); ok {
			return subschemaDepth(items)
		}
	}
	return 0
}
