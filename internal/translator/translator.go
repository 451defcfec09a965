// Package translator converts declarative test plans into Ginkgo E2E test
// source files. Translation is a pure function: no I/O, no shared state,
// byte-identical output for identical input.
package translator

import (
	"fmt"
	"strings"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

// driverImport is the package the generated tests drive the browser through.
const driverImport = "github.com/fjglira/GoE2E-PlanWeaver/pkg/webdriver"

// Options controls where and how the artifact is emitted.
type Options struct {
	OutDir      string
	FileSuffix  string // appended after ".spec"; default "_test.go"
	PackageName string // default "e2e_generated"
	BuildTag    string // default "e2e"; guards the generated file
}

func (o Options) withDefaults() Options {
	if o.FileSuffix == "" {
		o.FileSuffix = "_test.go"
	}
	if o.PackageName == "" {
		o.PackageName = "e2e_generated"
	}
	if o.BuildTag == "" {
		o.BuildTag = "e2e"
	}
	return o
}

// Translate renders a plan into a single generated test file. The plan is
// assumed structurally valid (see the plan package); the only fatal
// preconditions here are a suite name with no alphanumeric characters and
// an unrecognized step action. Writing Content to Path is the caller's job.
func Translate(plan *domain.Plan, opts Options) (*domain.GeneratedFile, error) {
	opts = opts.withDefaults()

	// Fail fast, before any output is assembled.
	slug := Slug(plan.SuiteName)
	if slug == "" {
		return nil, domain.NewError("translate", "", 0,
			fmt.Sprintf("suite name %q must contain at least one alphanumeric character", plan.SuiteName), nil)
	}

	sourceDescription := describeSource(plan.Source)
	helperName := "attachFailureArtifacts" + exportedCamel(slug)

	// Suite wrapper: display name, optional tag annotation, source annotation.
	describe := "var _ = Describe(" + goStr(plan.SuiteName)
	if label := renderLabel(plan.Tags); label != "" {
		describe += ", " + label
	}
	describe += ", func() {"
	body := []string{
		describe,
		"\tBeforeEach(func() {",
		fmt.Sprintf("\t\tAddReportEntry(\"source\", %s)", goStr(sourceDescription)),
		"\t})",
	}

	for _, test := range plan.Tests {
		body = append(body, "")
		testLines, err := renderTest(test, helperName)
		if err != nil {
			return nil, err
		}
		body = append(body, testLines...)
	}

	body = append(body, "})", "")
	body = append(body, renderHelper(helperName)...)
	body = append(body, "")

	lines := []string{
		"//go:build " + opts.BuildTag,
		"",
		"// Code generated by planweaver from " + sourceDescription + ". DO NOT EDIT.",
		"",
		"package " + opts.PackageName,
		"",
	}
	lines = append(lines, renderImports(body)...)
	lines = append(lines, "")
	lines = append(lines, body...)

	return &domain.GeneratedFile{
		Path:    joinOutputPath(opts.OutDir, slug+".spec"+opts.FileSuffix),
		Content: strings.Join(lines, "\n"),
	}, nil
}

// renderImports emits the import block for the rendered body. gomega only
// backs Expect assertions, so a suite whose steps never assert (zero tests,
// or goto-only tests) must not import it: the artifact would fail to
// compile on the unused import.
func renderImports(body []string) []string {
	usesGomega := false
	for _, line := range body {
		if strings.Contains(line, "Expect(") {
			usesGomega = true
			break
		}
	}

	lines := []string{
		"import (",
		"\t\"encoding/json\"",
		"",
		"\t. \"github.com/onsi/ginkgo/v2\"",
	}
	if usesGomega {
		lines = append(lines, "\t. \"github.com/onsi/gomega\"")
	}
	lines = append(lines,
		"",
		"\t"+goStr(driverImport),
		")",
	)
	return lines
}

// describeSource formats the provenance annotation. The "external" repo
// sentinel marks files outside any tracked repository.
func describeSource(src domain.Source) string {
	if src.Repo == domain.ExternalRepo {
		return "external file: " + src.Path
	}
	return src.Repo + "/" + src.Path
}

// renderTest renders one It block: optional tag annotation, unconditional
// navigation to the start URL, then one guarded block per step. Step indexes
// are 1-based and local to the test.
func renderTest(test domain.Test, helperName string) ([]string, error) {
	it := "\tIt(" + goStr(test.Name)
	if label := renderLabel(test.Tags); label != "" {
		it += ", " + label
	}
	it += ", func() {"

	lines := []string{
		it,
		"\t\tpage := webdriver.NewPage()",
		"\t\tdefer page.MustClose()",
		fmt.Sprintf("\t\tpage.MustNavigate(%s)", goStr(test.StartURL)),
	}

	for i, step := range test.Steps {
		stepLines, err := renderStep(step, i+1, helperName)
		if err != nil {
			return nil, err
		}
		lines = append(lines, "")
		lines = append(lines, stepLines...)
	}

	lines = append(lines, "\t})")
	return lines, nil
}

// renderHelper emits the shared failure-diagnostics routine. The JSON
// payload is recorded unconditionally and must never itself panic through
// to the caller; screenshot and video capture are best-effort.
func renderHelper(helperName string) []string {
	return []string{
		fmt.Sprintf("func %s(page *webdriver.Page, stepIndex int, action string, target string) {", helperName),
		"\tdefer func() {",
		"\t\t// diagnostics must never mask the original failure",
		"\t\t_ = recover()",
		"\t}()",
		"\tif page == nil {",
		"\t\treturn",
		"\t}",
		"\turl, _ := page.URL()",
		"\tpayload, _ := json.Marshal(map[string]any{",
		"\t\t\"url\":       url,",
		"\t\t\"stepIndex\": stepIndex,",
		"\t\t\"action\":    action,",
		"\t\t\"testId\":    target,",
		"\t})",
		"\tAddReportEntry(\"failure-diagnostics\", string(payload))",
		"\tif shot, err := page.Screenshot(); err == nil {",
		"\t\tAddReportEntry(\"failure-screenshot\", shot)",
		"\t}",
		"\tif video, err := page.VideoPath(); err == nil && video != \"\" {",
		"\t\tAddReportEntry(\"failure-video\", video)",
		"\t}",
		"}",
	}
}
