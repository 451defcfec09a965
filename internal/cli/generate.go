package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/config"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/generator"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/scanner"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate E2E test files from plan files",
	Long:  `Scans the configured input directories for plan files, validates each plan, and generates Ginkgo test files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}

		if dryRun {
			cfg.DryRun = true
		}
		applyLogLevel(cfg)

		log.Info("Configuration loaded successfully")
		log.Infof("Scanning directories: %v", cfg.Input.Directories)
		log.Infof("Output directory: %s", cfg.Output.Directory)

		return runGenerate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// applyLogLevel maps the configured level onto the logger; --verbose wins.
func applyLogLevel(cfg *config.Config) {
	if verbose {
		return
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
}

// runGenerate wires all components and runs the generator.
func runGenerate(cfg *config.Config) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	gen := generator.NewGenerator(s, log)
	return gen.Generate(cfg)
}
