package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchemaFile writes a JSON Schema document describing Document to
// dir/settings.schema.json. invopop/jsonschema only generates a schema, it
// does not validate at runtime (Validate/ValidateCategory do that), so
// this exists purely to document and export the settings shape the way
// the teacher's GenerateSchemaFile documents its own Config.
func GenerateSchemaFile(dir string) (string, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Document{})
	schema.ID = "https://viloxterm.invalid/settings.schema.json"
	schema.Title = "ViloxTerm Settings"
	schema.Description = "Schema for the layered, persisted settings document"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal settings schema: %w", err)
	}

	path := filepath.Join(dir, "settings.schema.json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create schema dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write settings schema: %w", err)
	}
	return path, nil
}
