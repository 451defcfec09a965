package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Plans   PlanConfig    `yaml:"plans"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	DryRun  bool          `yaml:"dry_run"`
}

type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type PlanConfig struct {
	FenceTag string `yaml:"fence_tag"`
}

type OutputConfig struct {
	Directory           string `yaml:"directory"`
	FileSuffix          string `yaml:"file_suffix"`
	PackageName         string `yaml:"package_name"`
	BuildTag            string `yaml:"build_tag"`
	CleanBeforeGenerate bool   `yaml:"clean_before_generate"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}
