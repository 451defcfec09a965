package scanner_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/scanner"
)

var _ = Describe("Scanner", func() {
	var s *scanner.FileScanner

	plansDir := filepath.Join("..", "..", "testdata", "plans")

	BeforeEach(func() {
		s = scanner.NewScanner(true)
	})

	It("should find plan JSON files in testdata", func() {
		files, err := s.Scan(plansDir, []string{"*.plan.json"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(1))
		Expect(filepath.Base(files[0])).To(Equal("golden.plan.json"))
	})

	It("should find markdown carriers alongside plan files", func() {
		files, err := s.Scan(plansDir, []string{"*.plan.json", "*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(3))
	})

	It("should return sorted file paths", func() {
		files, err := s.Scan(plansDir, []string{"*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(2))
		Expect(filepath.Base(files[0])).To(Equal("checkout.md"))
		Expect(filepath.Base(files[1])).To(Equal("notes.md"))
	})

	It("should respect exclude patterns", func() {
		files, err := s.Scan(plansDir, []string{"*.md"}, []string{"notes.md"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(1))
		Expect(filepath.Base(files[0])).To(Equal("checkout.md"))
	})

	It("should handle non-recursive mode", func() {
		s = scanner.NewScanner(false)
		files, err := s.Scan(filepath.Join("..", "..", "testdata"), []string{"*.plan.json"}, nil)
		Expect(err).ToNot(HaveOccurred())
		// Plans live in a subdirectory; non-recursive mode must not see them
		Expect(files).To(BeEmpty())
	})

	It("should return error for nonexistent directory", func() {
		_, err := s.Scan("nonexistent_dir", []string{"*.plan.json"}, nil)
		Expect(err).To(HaveOccurred())
	})
})
