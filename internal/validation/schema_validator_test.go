package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()
	schemaPath := writeFile(t, tmpDir, "person.schema.json", personSchema)

	tests := []struct {
		name     string
		file     string
		data     string
		errorMsg string
	}{
		{name: "valid json", file: "ok.json", data: `{"name": "John", "age": 30}`},
		{name: "valid yaml", file: "ok.yaml", data: "name: Jane\nage: 4\n"},
		{name: "missing required field", file: "missing.json", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type", file: "type.yaml", data: "name: John\nage: thirty\n", errorMsg: "/age"},
		{name: "constraint violation", file: "min.json", data: `{"name": "John", "age": -5}`, errorMsg: "/age"},
		{name: "invalid json", file: "bad.json", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
		{name: "invalid yaml", file: "bad.yml", data: "name: [unclosed\n", errorMsg: "parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, tt.file, tt.data)
			err := v.ValidateFile(dataPath, schemaPath)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	v := NewSchemaValidator()
	tmpDir := t.TempDir()

	dataPath := writeFile(t, tmpDir, "data.json", `{}`)
	err := v.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	schemaPath := writeFile(t, tmpDir, "obj.schema.json", `{"type": "object"}`)
	err = v.ValidateFile("nonexistent.json", schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "obj.schema.json", `{"type": "object"}`)

	require.NoError(t, v.ValidateBytes([]byte(`{"a": 1}`), schemaPath))
	require.NoError(t, v.ValidateYAML([]byte("a: 1\n"), schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ShippedEconomyTuning(t *testing.T) {
	v := NewSchemaValidator()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	err = v.ValidateFile(filepath.Join(root, "configs", "economy.yaml"), filepath.Join(root, "configs", "schemas", "economy.schema.json"))
	assert.NoError(t, err)
}
