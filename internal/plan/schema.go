package plan

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidJSON is returned when a plan document is not parseable JSON at
// all, as opposed to parseable JSON that fails schema validation.
var ErrInvalidJSON = errors.New("Invalid JSON")

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Validate checks that data is valid JSON and structurally matches the plan
// schema. It never touches the file system, so callers (and tests) hand it
// raw bytes from wherever they like.
func Validate(data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidJSON
	}

	s, err := compiledSchema()
	if err != nil {
		return domain.NewError("validate", "", 0, "failed to compile plan schema", err)
	}

	result, err := s.Validate(gojsonschema.NewStringLoader(string(data)))
	if err != nil {
		return domain.NewError("validate", "", 0, "failed to run schema validation", err)
	}

	if !result.Valid() {
		var b strings.Builder
		b.WriteString("plan does not match schema:")
		for _, e := range result.Errors() {
			b.WriteString(fmt.Sprintf("\n  - %s: %s", e.Field(), e.Description()))
		}
		return domain.NewErrorWithSuggestion("validate", "", 0, b.String(),
			"see internal/plan/schema.json for the expected shape", nil)
	}

	return nil
}
