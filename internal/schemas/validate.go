// Package schemas provides JSON Schema validation for structured LLM output.
// Schemas are embedded at compile time; the analyzer validates model
// responses against them before any score is trusted.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema names
const (
	SkillAnalysis = "skill_analysis"
	Commitment    = "commitment"
)

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports that a document failed schema validation.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("schema %s validation failed: %s", e.Schema, strings.Join(msgs, "; "))
}

// Validate checks a JSON document against a named embedded schema.
// Returns a *ValidationError when the document is malformed, or a plain
// error when the schema itself cannot be loaded.
func Validate(schemaName string, document []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName + ".schema.json")
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ValidationError{
			Schema: schemaName,
			Errors: []FieldError{{Field: "(document)", Message: err.Error()}},
		}
	}

	if !result.Valid() {
		verr := &ValidationError{Schema: schemaName}
		for _, e := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{
				Field:   e.Field(),
				Message: e.Description(),
			})
		}
		return verr
	}

	return nil
}
