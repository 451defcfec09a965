package config

import (
	"fmt"
	"strings"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Input validation
	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	// Plan validation
	if cfg.Plans.FenceTag == "" {
		errs = append(errs, "plans.fence_tag must not be empty")
	}

	// Output validation
	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if cfg.Output.PackageName == "" {
		errs = append(errs, "output.package_name must not be empty")
	}
	if cfg.Output.FileSuffix == "" {
		errs = append(errs, "output.file_suffix must not be empty")
	}
	if !strings.HasSuffix(cfg.Output.FileSuffix, ".go") {
		errs = append(errs, "output.file_suffix must end with .go")
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
