package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the hook configuration file.
// It reflects the Config struct from types.go, using YAML field names for
// property names so the schema matches the document as authored.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// The Extensions field intentionally absorbs unknown top-level keys,
		// so the schema must not reject them.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a flatter schema.
		ExpandedStruct: true,
		// Use YAML field names for property names.
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Hook Configuration"
	schema.Description = "Schema for .pre-commit-config.yaml hook configuration files."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
