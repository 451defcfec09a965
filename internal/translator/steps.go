package translator

import (
	"fmt"
	"regexp"

	"github.com/fjglira/GoE2E-PlanWeaver/internal/domain"
)

// renderStep renders one step as a guarded block: the action is attempted
// inside an immediately-invoked func whose deferred recover hands the
// failure to the diagnostics helper before re-panicking, so the original
// failure still fails the test. index is 1-based and test-local.
func renderStep(step domain.Step, index int, helperName string) ([]string, error) {
	body, err := stepBody(step)
	if err != nil {
		return nil, err
	}

	target := ""
	if step.HasTarget() {
		target = step.Target
	}

	lines := []string{
		fmt.Sprintf("\t\t// step %d: %s", index, stepSummary(step)),
		"\t\tfunc() {",
		"\t\t\tdefer func() {",
		"\t\t\t\tif r := recover(); r != nil {",
		fmt.Sprintf("\t\t\t\t\t%s(page, %d, %s, %s)", helperName, index, goStr(string(step.Action)), goStr(target)),
		"\t\t\t\t\tpanic(r)",
		"\t\t\t\t}",
		"\t\t\t}()",
	}
	for _, b := range body {
		lines = append(lines, "\t\t\t"+b)
	}
	lines = append(lines, "\t\t}()")
	return lines, nil
}

// stepBody renders the variant-specific statements, unindented. Element
// variants first assert the target resolves to exactly one element.
func stepBody(step domain.Step) ([]string, error) {
	locate := []string{
		fmt.Sprintf("loc := page.ByTestID(%s)", goStr(step.Target)),
		"Expect(loc.MustCount()).To(Equal(1))",
	}

	switch step.Action {
	case domain.ActionClick:
		return append(locate, "loc.MustClick()"), nil
	case domain.ActionExpectVisible:
		return append(locate, "Expect(loc.MustVisible()).To(BeTrue())"), nil
	case domain.ActionExpectNotVisible:
		return append(locate, "Expect(loc.MustVisible()).To(BeFalse())"), nil
	case domain.ActionExpectText:
		return append(locate, fmt.Sprintf("Expect(loc.MustText()).To(ContainSubstring(%s))", goStr(step.Value))), nil
	case domain.ActionSelect:
		return append(locate, fmt.Sprintf("loc.MustSelect(%s)", goStr(step.Value))), nil
	case domain.ActionFill:
		return append(locate, fmt.Sprintf("loc.MustFill(%s)", goStr(step.Value))), nil
	case domain.ActionGoto:
		return []string{fmt.Sprintf("page.MustNavigate(%s)", goStr(step.Value))}, nil
	case domain.ActionExpectURL:
		// Substring containment on purpose: the pattern is the literal value
		// with every regexp metacharacter quoted, left unanchored.
		pattern := regexp.QuoteMeta(step.Value)
		return []string{fmt.Sprintf("Expect(page.MustURL()).To(MatchRegexp(%s))", goStr(pattern))}, nil
	default:
		return nil, domain.NewError("translate", "", 0,
			fmt.Sprintf("unsupported step action %q in step %+v", step.Action, step), nil)
	}
}

// stepSummary is the human-readable comment above a step block.
func stepSummary(step domain.Step) string {
	switch {
	case step.HasTarget() && step.Value != "":
		return fmt.Sprintf("%s %s %q", step.Action, step.Target, step.Value)
	case step.HasTarget():
		return fmt.Sprintf("%s %s", step.Action, step.Target)
	default:
		return fmt.Sprintf("%s %q", step.Action, step.Value)
	}
}
