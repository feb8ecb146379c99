package harness

// Entry is one evaluated quantity or step in the execution trace.
type Entry struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Uncertainty float64 `json:"uncertainty"`
	Rendered    string  `json:"rendered"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success. True if all checks hold.
	Pass bool `json:"pass"`

	// Entries contains every quantity and step in declaration order.
	// Used for golden comparison (see RunGolden).
	Entries []Entry `json:"entries"`

	// Errors contains check failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:    true,
		Entries: []Entry{},
		Errors:  []string{},
	}
}

// AddError adds a check failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
