package domain

// Plan is the translation unit: a named suite of declarative browser tests,
// usually loaded from a .plan.json file or a tagged fence in a markdown doc.
type Plan struct {
	SuiteName string   `json:"suiteName"`
	Tags      []string `json:"tags,omitempty"`
	Source    Source   `json:"source"`
	Tests     []Test   `json:"tests"`
}

// Source records where a plan came from. A Repo of "external" marks a file
// that lives outside any tracked repository.
type Source struct {
	Repo string `json:"repo"`
	Path string `json:"path"`
}

// ExternalRepo is the sentinel Source.Repo value for external files.
const ExternalRepo = "external"

// Test is a single test case: navigate to StartURL, then run Steps in order.
type Test struct {
	Name     string   `json:"name"`
	StartURL string   `json:"startUrl"`
	Tags     []string `json:"tags,omitempty"`
	Steps    []Step   `json:"steps"`
}

// StepAction discriminates the step variants.
type StepAction string

const (
	ActionClick            StepAction = "click"
	ActionExpectVisible    StepAction = "expectVisible"
	ActionExpectNotVisible StepAction = "expectNotVisible"
	ActionExpectText       StepAction = "expectText"
	ActionSelect           StepAction = "select"
	ActionFill             StepAction = "fill"
	ActionGoto             StepAction = "goto"
	ActionExpectURL        StepAction = "expectUrl"
)

// Step is one atomic action within a test. Target identifies an element by
// its stable test id (not a CSS selector); Value carries the action payload
// for the variants that take one. Which fields are meaningful depends on
// Action; the renderer switches exhaustively and rejects unknown actions.
type Step struct {
	Action StepAction `json:"action"`
	Target string     `json:"target,omitempty"`
	Value  string     `json:"value,omitempty"`
}

// HasTarget reports whether the step's variant operates on an element.
// goto and expectUrl act on the page as a whole.
func (s Step) HasTarget() bool {
	return s.Action != ActionGoto && s.Action != ActionExpectURL
}

// GeneratedFile is the translator's output: the content of one generated
// test source file and the path it should be written to. Writing is the
// caller's responsibility.
type GeneratedFile struct {
	Path    string
	Content string
}
