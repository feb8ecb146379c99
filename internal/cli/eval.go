package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// EvalResult is the JSON payload for one evaluated scenario.
type EvalResult struct {
	Scenario    string      `json:"scenario"`
	Description string      `json:"description,omitempty"`
	Entries     []EvalEntry `json:"entries"`
}

// EvalEntry is one evaluated quantity or result.
type EvalEntry struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Uncertainty float64 `json:"uncertainty"`
	Rendered    string  `json:"rendered"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <scenario-dir>",
		Short: "Evaluate measurement scenarios",
		Long: `Evaluate CUE measurement scenarios with uncertainty propagation.

Each .cue file in the directory is one scenario: named quantities plus
named results applying binary operators. Quantities and results are
printed with their propagated standard uncertainty.

Example:
  gauge eval ./scenarios
  gauge eval --format json ./scenarios`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loaded, err := LoadScenarios(dir)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Found %d CUE file(s) in %s", loaded.FileCount, dir)

	results := make([]EvalResult, 0, len(loaded.Scenarios))
	for _, s := range loaded.Scenarios {
		evals, err := s.Evaluate()
		if err != nil {
			if outErr := formatter.Error(ErrCodeEval, err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitFailure, "scenario evaluation failed", err)
		}

		r := EvalResult{Scenario: s.Name, Description: s.Description}
		for _, e := range evals {
			r.Entries = append(r.Entries, EvalEntry{
				Name:        e.Name,
				Value:       e.Quantity.Value(),
				Uncertainty: e.Quantity.Uncertainty(),
				Rendered:    e.Rendered,
			})
		}
		results = append(results, r)
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	return formatter.Success(renderEvalText(results))
}

// renderEvalText renders evaluated scenarios for terminal output.
func renderEvalText(results []EvalResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "scenario %s\n", r.Scenario)
		for _, e := range r.Entries {
			fmt.Fprintf(&b, "  %s = %s\n", e.Name, e.Rendered)
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// outputLoadError emits a load error in the configured format and
// returns the matching exit error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		if outErr := formatter.Error(loadErr.Code, loadErr.Message, nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to load scenarios", err)
	}
	if outErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "failed to load scenarios", err)
}
