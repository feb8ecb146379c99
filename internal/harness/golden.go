package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot captures the complete trace of a scenario execution for
// golden comparison. Field order is fixed by the struct, so serialized
// snapshots are byte-identical across runs.
type Snapshot struct {
	Scenario string  `json:"scenario"`
	Entries  []Entry `json:"entries"`
}

// RunGolden executes a scenario and compares its trace against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution fails or a check is violated;
// a trace mismatch fails the test via goldie.
func RunGolden(t *testing.T, s *Scenario) error {
	t.Helper()

	result, err := Run(s)
	if err != nil {
		return err
	}
	if !result.Pass {
		return checkFailure(result)
	}

	snapshot := Snapshot{
		Scenario: s.Name,
		Entries:  result.Entries,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)

	return nil
}

type checkFailureError []string

func (e checkFailureError) Error() string {
	msg := "scenario checks failed:"
	for _, v := range e {
		msg += "\n  " + v
	}
	return msg
}

func checkFailure(r *Result) error {
	return checkFailureError(r.Errors)
}
