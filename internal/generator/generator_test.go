package generator_test

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/config"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/generator"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/scanner"
)

var _ = Describe("Generator", func() {
	var (
		gen       *generator.DefaultGenerator
		cfg       *config.Config
		outputDir string
		log       *logrus.Logger
	)

	BeforeEach(func() {
		log = logrus.New()
		log.SetOutput(io.Discard)

		var err error
		outputDir, err = os.MkdirTemp("", "planweaver-test-*")
		Expect(err).ToNot(HaveOccurred())

		cfg = config.DefaultConfig()
		cfg.Input.Directories = []string{
			filepath.Join("..", "..", "testdata", "plans"),
		}
		cfg.Output.Directory = outputDir

		gen = generator.NewGenerator(scanner.NewScanner(true), log)
	})

	AfterEach(func() {
		os.RemoveAll(outputDir)
	})

	It("should generate spec files from plan JSON and markdown carriers", func() {
		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		entries, err := os.ReadDir(outputDir)
		Expect(err).ToNot(HaveOccurred())

		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		Expect(names).To(ContainElement("golden-file-test.spec_test.go"))
		Expect(names).To(ContainElement("checkout-flow.spec_test.go"))
	})

	It("should skip markdown files without a plan fence", func() {
		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		entries, err := os.ReadDir(outputDir)
		Expect(err).ToNot(HaveOccurred())
		// golden + checkout + suite bootstrap, nothing for notes.md
		Expect(entries).To(HaveLen(3))
	})

	It("should generate content with suite, tests and diagnostics helper", func() {
		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		content, err := os.ReadFile(filepath.Join(outputDir, "golden-file-test.spec_test.go"))
		Expect(err).ToNot(HaveOccurred())
		contentStr := string(content)
		Expect(contentStr).To(ContainSubstring("package e2e_generated"))
		Expect(contentStr).To(ContainSubstring(`Describe("Golden file test"`))
		Expect(contentStr).To(ContainSubstring(`It("happy path"`))
		Expect(contentStr).To(ContainSubstring("attachFailureArtifactsGoldenFileTest"))
	})

	It("should render external sources from markdown carriers", func() {
		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		content, err := os.ReadFile(filepath.Join(outputDir, "checkout-flow.spec_test.go"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("external file: docs/checkout.md"))
	})

	It("should generate suite_test.go in the output directory", func() {
		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		content, err := os.ReadFile(filepath.Join(outputDir, "suite_test.go"))
		Expect(err).ToNot(HaveOccurred())

		contentStr := string(content)
		Expect(contentStr).To(ContainSubstring("package e2e_generated"))
		Expect(contentStr).To(ContainSubstring("func TestE2eGenerated(t *testing.T)"))
		Expect(contentStr).To(ContainSubstring("RunSpecs(t,"))
		Expect(contentStr).To(ContainSubstring(`. "github.com/onsi/ginkgo/v2"`))
		Expect(contentStr).To(ContainSubstring(`. "github.com/onsi/gomega"`))
	})

	It("should not overwrite existing suite_test.go", func() {
		cfg.Output.CleanBeforeGenerate = false

		suitePath := filepath.Join(outputDir, "suite_test.go")
		customContent := "// custom suite file\npackage e2e_generated\n"
		Expect(os.WriteFile(suitePath, []byte(customContent), 0644)).To(Succeed())

		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		content, err := os.ReadFile(suitePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(Equal(customContent))
	})

	It("should clean previously generated specs but keep other files", func() {
		stale := filepath.Join(outputDir, "removed-suite.spec_test.go")
		keep := filepath.Join(outputDir, "helpers_test.go")
		Expect(os.WriteFile(stale, []byte("stale"), 0644)).To(Succeed())
		Expect(os.WriteFile(keep, []byte("package e2e_generated\n"), 0644)).To(Succeed())

		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		_, err = os.Stat(stale)
		Expect(os.IsNotExist(err)).To(BeTrue())
		_, err = os.Stat(keep)
		Expect(err).ToNot(HaveOccurred())
	})

	It("should respect dry-run mode", func() {
		cfg.DryRun = true
		err := gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())

		entries, err := os.ReadDir(outputDir)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("should fail when two suites collide on the same slug", func() {
		inputDir, err := os.MkdirTemp("", "planweaver-collide-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(inputDir)

		planJSON := `{
			"suiteName": "Same Suite",
			"source": {"repo": "r", "path": "p"},
			"tests": []
		}`
		Expect(os.WriteFile(filepath.Join(inputDir, "a.plan.json"), []byte(planJSON), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(inputDir, "b.plan.json"), []byte(planJSON), 0644)).To(Succeed())

		cfg.Input.Directories = []string{inputDir}
		err = gen.Generate(cfg)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("collides"))
	})

	It("should surface invalid plans as errors", func() {
		inputDir, err := os.MkdirTemp("", "planweaver-invalid-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(inputDir)

		Expect(os.WriteFile(filepath.Join(inputDir, "bad.plan.json"), []byte(`{"nope": true}`), 0644)).To(Succeed())

		cfg.Input.Directories = []string{inputDir}
		err = gen.Generate(cfg)
		Expect(err).To(HaveOccurred())
	})

	It("should handle empty directory gracefully", func() {
		emptyDir, err := os.MkdirTemp("", "planweaver-empty-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(emptyDir)

		cfg.Input.Directories = []string{emptyDir}
		err = gen.Generate(cfg)
		Expect(err).ToNot(HaveOccurred())
	})
})
