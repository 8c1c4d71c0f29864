package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJSONWithSchema_Valid(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": { "message": {"type": "string"}, "value": {"type": "integer"} },
		"required": ["message"]
	}`
	assert.NoError(t, ValidateJSONWithSchema(schema, `{"message": "hi", "value": 42}`))
	assert.NoError(t, ValidateJSONWithSchema(schema, `{"message": "hi"}`))
}

func TestValidateJSONWithSchema_Invalid(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": { "message": {"type": "string"}, "value": {"type": "integer", "minimum": 0} },
		"required": ["message", "value"]
	}`

	err := ValidateJSONWithSchema(schema, `{"message": "hi"}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "missing properties: 'value'")
	}

	err = ValidateJSONWithSchema(schema, `{"message": "hi", "value": "forty-two"}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "expected integer, but got string")
	}

	err = ValidateJSONWithSchema(schema, `{"message": "hi", "value": -5}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "must be >= 0 but found -5")
	}
}

func TestValidateJSONWithSchema_EmptySchema(t *testing.T) {
	assert.NoError(t, ValidateJSONWithSchema("", `{"message": "hi"}`))
}

func TestValidateJSONWithSchema_InvalidSchema(t *testing.T) {
	err := ValidateJSONWithSchema(`{"type": "object", "properties": {"message": {"type": "str"}}}`, `{"message": "hi"}`)
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "failed to compile JSON schema")
	}
}

func TestValidateJSONWithSchema_InvalidData(t *testing.T) {
	schema := `{"type": "object"}`
	err := ValidateJSONWithSchema(schema, "")
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), "failed to unmarshal JSON data")
	}
}
