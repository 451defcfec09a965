package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Input: InputConfig{
			Directories: []string{"plans"},
			Include:     []string{"*.plan.json", "*.md"},
			Exclude:     []string{"vendor/**", "node_modules/**"},
			Recursive:   &recursive,
		},
		Plans: PlanConfig{
			FenceTag: "e2e-plan",
		},
		Output: OutputConfig{
			Directory:           "tests/generated",
			FileSuffix:          "_test.go",
			PackageName:         "e2e_generated",
			BuildTag:            "e2e",
			CleanBeforeGenerate: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
