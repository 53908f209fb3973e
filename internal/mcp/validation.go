package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator wraps JSON Schema compilation and validation
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator creates a validator from a JSON schema definition
func NewSchemaValidator(schemaMap map[string]interface{}) (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7 // MCP uses JSON Schema Draft 7

	// Marshal schema map to JSON
	schemaJSON, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	// Add schema to compiler as JSON reader
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	// Compile schema
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// Validate validates arguments against the compiled schema.
// Violations come back as *InvalidArgumentsError naming the offending field.
func (v *SchemaValidator) Validate(args interface{}) error {
	err := v.schema.Validate(args)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validation failed: %w", err)
	}

	// The root error only says the document failed; the first leaf holds
	// the keyword that actually failed.
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	return &InvalidArgumentsError{
		Field:   strings.TrimPrefix(ve.InstanceLocation, "/"),
		Message: ve.Message,
	}
}
