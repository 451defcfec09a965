package plan_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
	"github.com/fjglira/GoE2E-PlanWeaver/internal/plan"
)

var _ = Describe("Parse", func() {
	It("should decode a valid JSON plan into the domain model", func() {
		p, err := plan.Parse("golden.plan.json", []byte(validPlanJSON), "")
		Expect(err).ToNot(HaveOccurred())
		Expect(p.SuiteName).To(Equal("Golden file test"))
		Expect(p.Tags).To(Equal([]string{"@smoke", "@fast"}))
		Expect(p.Source.Repo).To(Equal("some-repo"))
		Expect(p.Tests).To(HaveLen(1))
		Expect(p.Tests[0].Steps).To(HaveLen(4))
		Expect(p.Tests[0].Steps[0].Action).To(Equal(domain.ActionClick))
		Expect(p.Tests[0].Steps[3].Action).To(Equal(domain.ActionExpectURL))
		Expect(p.Tests[0].Steps[3].HasTarget()).To(BeFalse())
	})

	It("should surface Invalid JSON with the file in context", func() {
		_, err := plan.Parse("broken.plan.json", []byte("{"), "")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Invalid JSON"))
		Expect(err.Error()).To(ContainSubstring("broken.plan.json"))
	})

	It("should extract a plan from a tagged markdown fence", func() {
		md := "# Login flows\n\nSome prose about the suite.\n\n```e2e-plan\n" +
			validPlanJSON + "\n```\n\nMore prose.\n"
		p, err := plan.Parse("docs/login.md", []byte(md), "e2e-plan")
		Expect(err).ToNot(HaveOccurred())
		Expect(p.SuiteName).To(Equal("Golden file test"))
	})

	It("should fail when a markdown carrier has no tagged fence", func() {
		md := "# Login flows\n\n```json\n{}\n```\n"
		_, err := plan.Parse("docs/login.md", []byte(md), "e2e-plan")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`no fenced code block tagged "e2e-plan"`))
	})

	It("should ignore fences with other tags", func() {
		md := "```bash\necho hi\n```\n\n```e2e-plan\n" + validPlanJSON + "\n```\n"
		p, err := plan.Parse("docs/mixed.md", []byte(md), "e2e-plan")
		Expect(err).ToNot(HaveOccurred())
		Expect(p.SuiteName).To(Equal("Golden file test"))
	})
})

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "planweaver-test-*")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("should load a plan file from disk", func() {
		path := filepath.Join(dir, "golden.plan.json")
		Expect(os.WriteFile(path, []byte(validPlanJSON), 0644)).To(Succeed())

		p, err := plan.Load(path, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(p.SuiteName).To(Equal("Golden file test"))
	})

	It("should report missing files with a hint", func() {
		_, err := plan.Load(filepath.Join(dir, "missing.plan.json"), "")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to read plan file"))
	})
})
