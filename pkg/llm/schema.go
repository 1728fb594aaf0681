package llm

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled JSON Schema used to gate completeJson results.
type Schema struct {
	name     string
	raw      string
	compiled *jsonschema.Schema
}

// MustSchema compiles a raw JSON Schema document; panics on a malformed
// schema. Schemas are package-level constants, so a failure is a programming
// error caught at init.
func MustSchema(name, raw string) *Schema {
	compiled, err := jsonschema.CompileString(name+".json", raw)
	if err != nil {
		panic(fmt.Sprintf("invalid JSON schema %q: %v", name, err))
	}
	return &Schema{name: name, raw: raw, compiled: compiled}
}

// Name returns the schema's identifier.
func (s *Schema) Name() string { return s.name }

// Raw returns the schema document as supplied.
func (s *Schema) Raw() string { return s.raw }

// Validate checks a raw JSON value against the schema.
func (s *Schema) Validate(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("parse JSON for %s validation: %w", s.name, err)
	}
	if err := s.compiled.Validate(v); err != nil {
		return fmt.Errorf("schema %s: %w", s.name, err)
	}
	return nil
}
