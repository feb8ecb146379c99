package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool     `json:"valid"`
	Scenarios []string `json:"scenarios,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario-dir>",
		Short: "Validate scenarios without evaluating them",
		Long: `Compile-check CUE measurement scenarios without evaluating them.

Catches malformed quantity declarations (ambiguous sources, empty
observation lists, missing bounds) and unknown result operators before
they reach evaluation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
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

	result := ValidationResult{Valid: true}
	for _, s := range loaded.Scenarios {
		result.Scenarios = append(result.Scenarios, s.Name)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("✓ %d scenario(s) valid", len(result.Scenarios)))
}
