// Package plan loads and validates declarative test plans. Plans are JSON
// documents, either standalone (*.plan.json) or embedded in a markdown file
// as a tagged fence.
package plan

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

// DefaultFenceTag is the fence info tag that marks an embedded plan.
const DefaultFenceTag = "e2e-plan"

// Load reads a plan from path, extracts it from a markdown fence when the
// carrier is a markdown file, validates it against the schema, and decodes
// it into the domain model.
func Load(path, fenceTag string) (*domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("load", path, 0,
			"failed to read plan file",
			"check that the file exists and has read permissions",
			err)
	}
	return Parse(path, data, fenceTag)
}

// Parse decodes plan bytes. path is used for error context and carrier
// detection only; no file access happens here.
func Parse(path string, data []byte, fenceTag string) (*domain.Plan, error) {
	if isMarkdown(path) {
		if fenceTag == "" {
			fenceTag = DefaultFenceTag
		}
		var err error
		data, err = ExtractPlanFence(path, data, fenceTag)
		if err != nil {
			return nil, err
		}
	}

	if err := Validate(data); err != nil {
		if errors.Is(err, ErrInvalidJSON) {
			return nil, domain.NewError("load", path, 0, "Invalid JSON", nil)
		}
		return nil, domain.NewError("validate", path, 0, "plan failed validation", err)
	}

	var p domain.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, domain.NewError("load", path, 0, "failed to decode plan", err)
	}
	return &p, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
