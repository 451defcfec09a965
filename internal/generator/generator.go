package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/config"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/plan"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/scanner"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/translator"
)

// Generator is the top-level orchestrator.
type Generator interface {
	Generate(cfg *config.Config) error
}

// DefaultGenerator implements Generator by wiring all components together.
type DefaultGenerator struct {
	scanner scanner.Scanner
	log     *logrus.Logger
}

// NewGenerator creates a new DefaultGenerator with all dependencies.
func NewGenerator(s scanner.Scanner, log *logrus.Logger) *DefaultGenerator {
	return &DefaultGenerator{
		scanner: s,
		log:     log,
	}
}

// Generate runs the full pipeline: scan → load+validate → translate → write.
func (g *DefaultGenerator) Generate(cfg *config.Config) error {
	// Step 1: Clean output directory if configured
	if cfg.Output.CleanBeforeGenerate && !cfg.DryRun {
		g.log.Debugf("Cleaning output directory: %s", cfg.Output.Directory)
		if err := cleanOutputDir(cfg.Output.Directory, cfg.Output.FileSuffix); err != nil {
			return domain.NewErrorWithSuggestion("write", cfg.Output.Directory, 0,
				"failed to clean output directory",
				"check file permissions or set output.clean_before_generate to false in planweaver.yaml",
				err)
		}
	}

	// Step 2: Scan for plan files
	var allFiles []string
	for _, dir := range cfg.Input.Directories {
		g.log.Debugf("Scanning directory: %s", dir)
		files, err := g.scanner.Scan(dir, cfg.Input.Include, cfg.Input.Exclude)
		if err != nil {
			g.log.Warnf("Failed to scan directory %s: %v", dir, err)
			continue
		}
		allFiles = append(allFiles, files...)
	}

	if len(allFiles) == 0 {
		g.log.Warn("No plan files found")
		return nil
	}

	g.log.Infof("Found %d plan file(s)", len(allFiles))

	// Step 3: Load and validate each plan
	type loaded struct {
		file string
		plan *domain.Plan
	}
	var plans []loaded
	for _, filePath := range allFiles {
		g.log.Debugf("Processing: %s", filePath)

		p, err := plan.Load(filePath, cfg.Plans.FenceTag)
		if errors.Is(err, plan.ErrNoPlanFence) {
			g.log.Debugf("No plan fence in %s, skipping", filePath)
			continue
		}
		if err != nil {
			return err
		}

		plans = append(plans, loaded{file: filePath, plan: p})
	}

	if len(plans) == 0 {
		g.log.Warn("No plans loaded from input files")
		return nil
	}

	g.log.Infof("Loaded %d plan(s)", len(plans))

	// Step 4: Translate, watching for suites that collide on the same slug
	opts := translator.Options{
		OutDir:      cfg.Output.Directory,
		FileSuffix:  cfg.Output.FileSuffix,
		PackageName: cfg.Output.PackageName,
		BuildTag:    cfg.Output.BuildTag,
	}

	type artifact struct {
		file string
		out  *domain.GeneratedFile
	}
	var artifacts []artifact
	seen := make(map[string]string)
	for _, l := range plans {
		out, err := translator.Translate(l.plan, opts)
		if err != nil {
			return domain.NewError("translate", l.file, 0, "failed to translate plan", err)
		}
		if prev, dup := seen[out.Path]; dup {
			return domain.NewErrorWithSuggestion("translate", l.file, 0,
				fmt.Sprintf("suite %q collides with %s on output path %s", l.plan.SuiteName, prev, out.Path),
				"rename one of the suites so their slugs differ",
				nil)
		}
		seen[out.Path] = l.file
		artifacts = append(artifacts, artifact{file: l.file, out: out})
	}

	// Step 5: Ensure output directory exists
	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
			return domain.NewErrorWithSuggestion("write", cfg.Output.Directory, 0,
				"failed to create output directory",
				"check that the parent directory exists and has write permissions",
				err)
		}
	}

	// Step 6: Write artifacts
	for _, a := range artifacts {
		if cfg.DryRun {
			g.log.Infof("[DRY-RUN] Would write: %s", a.out.Path)
			g.log.Debugf("[DRY-RUN] Content:\n%s", a.out.Content)
			continue
		}

		g.log.Infof("Writing: %s", a.out.Path)
		if err := os.WriteFile(a.out.Path, []byte(a.out.Content), 0644); err != nil {
			return domain.NewErrorWithSuggestion("write", a.out.Path, 0,
				"failed to write output file",
				"check disk space and write permissions for the output directory",
				err)
		}
	}

	// Step 7: Write the suite bootstrap once; never overwrite a custom one
	if !cfg.DryRun {
		if err := g.ensureSuiteBootstrap(cfg); err != nil {
			return err
		}
	}

	g.log.Info("Generation complete")
	return nil
}

// ensureSuiteBootstrap writes suite_test.go into the output directory if it
// does not exist yet. Generated specs need a single RunSpecs entrypoint.
func (g *DefaultGenerator) ensureSuiteBootstrap(cfg *config.Config) error {
	path := filepath.Join(cfg.Output.Directory, "suite_test.go")
	if _, err := os.Stat(path); err == nil {
		g.log.Debugf("Suite bootstrap already present: %s", path)
		return nil
	} else if !os.IsNotExist(err) {
		return domain.NewError("write", path, 0, "failed to stat suite bootstrap", err)
	}

	g.log.Infof("Writing: %s", path)
	content := suiteBootstrap(cfg.Output.PackageName, cfg.Output.BuildTag)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return domain.NewError("write", path, 0, "failed to write suite bootstrap", err)
	}
	return nil
}

// suiteBootstrap renders the RunSpecs entrypoint for the generated package.
func suiteBootstrap(packageName, buildTag string) string {
	testName := exportedName(packageName)
	var b strings.Builder
	if buildTag != "" {
		fmt.Fprintf(&b, "//go:build %s\n\n", buildTag)
	}
	fmt.Fprintf(&b, "package %s\n\n", packageName)
	b.WriteString("import (\n")
	b.WriteString("\t\"testing\"\n\n")
	b.WriteString("\t. \"github.com/onsi/ginkgo/v2\"\n")
	b.WriteString("\t. \"github.com/onsi/gomega\"\n")
	b.WriteString(")\n\n")
	fmt.Fprintf(&b, "func Test%s(t *testing.T) {\n", testName)
	b.WriteString("\tRegisterFailHandler(Fail)\n")
	fmt.Fprintf(&b, "\tRunSpecs(t, %q)\n", testName+" Suite")
	b.WriteString("}\n")
	return b.String()
}

// exportedName converts a package name like "e2e_generated" into an
// exported identifier fragment like "E2eGenerated".
func exportedName(packageName string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(packageName, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// cleanOutputDir removes previously generated spec files from the output
// directory. The suite bootstrap and anything hand-written stay in place.
func cleanOutputDir(dir, fileSuffix string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil // Nothing to clean
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".spec"+fileSuffix) {
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}
