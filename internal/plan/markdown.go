package plan

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

// ErrNoPlanFence marks a markdown file that carries no tagged plan fence.
// The generator skips such files instead of failing the run.
var ErrNoPlanFence = errors.New("no plan fence found")

// ExtractPlanFence pulls the first fenced code block tagged with fenceTag
// (e.g. ```e2e-plan) out of a markdown document and returns its body, which
// is expected to be plan JSON. Plans living next to the prose that explains
// them is the whole point of the markdown carrier.
func ExtractPlanFence(filePath string, content []byte, fenceTag string) ([]byte, error) {
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var found []byte
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found != nil {
			return ast.WalkContinue, nil
		}

		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var info string
		if block.Info != nil {
			info = string(block.Info.Segment.Value(content))
		}
		tag := firstToken(info)
		if tag != fenceTag {
			return ast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(content))
		}
		found = buf.Bytes()
		return ast.WalkStop, nil
	})
	if err != nil {
		return nil, domain.NewErrorWithSuggestion("load", filePath, 0,
			"failed to walk markdown AST",
			"check the markdown file for syntax issues in its fenced code blocks",
			err)
	}

	if found == nil {
		return nil, domain.NewErrorWithSuggestion("load", filePath, 0,
			fmt.Sprintf("no fenced code block tagged %q found", fenceTag),
			fmt.Sprintf("wrap the plan JSON in a ```%s fence, or point planweaver at the .plan.json file directly", fenceTag),
			ErrNoPlanFence)
	}

	return found, nil
}

// firstToken returns the first whitespace-separated token of a fence info
// string. Attributes after the tag are tolerated and ignored.
func firstToken(info string) string {
	fields := strings.Fields(strings.TrimSpace(info))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
