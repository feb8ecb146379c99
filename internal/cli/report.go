package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/gauge/internal/measure"
	"github.com/roach88/gauge/internal/store"
)

// ReportResult is the JSON payload for one summarized series.
type ReportResult struct {
	Series   string    `json:"series"`
	Count    int64     `json:"count"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Mean     float64   `json:"mean"`
	Span     float64   `json:"span"`
	First    time.Time `json:"first"`
	Last     time.Time `json:"last"`
	Quantity string    `json:"quantity"` // mean ± standard error, rendered
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		database  string
		unit      string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "report [series]",
		Short: "Summarize recorded series",
		Long: `Summarize a recorded reading series from the SQLite log.

Prints the running-accumulator counters (count, min, max, mean, span,
first and last timestamps) and the derived quantity: the mean with the
standard error of the mean as its uncertainty.

Without a series argument, lists the recorded series names.

Example:
  gauge report --db ./gauge.db temperature
  gauge report --db ./gauge.db temperature --unit "°C" --precision 2`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runReport(rootOpts, database, name, unit, precision, cmd)
		},
	}

	cmd.Flags().StringVar(&database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "unit for the derived quantity")
	cmd.Flags().IntVar(&precision, "precision", -1, "fixed-point digits for the derived quantity")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReport(opts *RootOptions, database, name, unit string, precision int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(database)
	if err != nil {
		if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := context.Background()

	if name == "" {
		names, err := st.SeriesNames(ctx)
		if err != nil {
			if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "failed to list series", err)
		}
		if formatter.Format == "json" {
			return formatter.Success(names)
		}
		return formatter.Success(strings.Join(names, "\n"))
	}

	summary, err := st.Summarize(ctx, name)
	if err != nil {
		if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to summarize series", err)
	}
	if summary.Count == 0 {
		if outErr := formatter.Error(ErrCodeNotFound, fmt.Sprintf("no readings for series %q", name), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "series has no readings", nil)
	}

	values, err := st.Values(ctx, name)
	if err != nil {
		if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to read series values", err)
	}
	q := measure.FromObservations(values)

	spec := unit
	if spec == "" {
		spec = measure.NoUnit
	}
	if precision >= 0 {
		spec = fmt.Sprintf("%s.%d", spec, precision)
	}

	result := ReportResult{
		Series:   summary.Name,
		Count:    summary.Count,
		Min:      summary.Min,
		Max:      summary.Max,
		Mean:     summary.Mean,
		Span:     summary.Span,
		First:    summary.First,
		Last:     summary.Last,
		Quantity: q.Format(spec),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(renderReportText(result))
}

func renderReportText(r ReportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "series %s\n", r.Series)
	fmt.Fprintf(&b, "  count: %d\n", r.Count)
	fmt.Fprintf(&b, "  min:   %v\n", r.Min)
	fmt.Fprintf(&b, "  max:   %v\n", r.Max)
	fmt.Fprintf(&b, "  mean:  %v\n", r.Mean)
	fmt.Fprintf(&b, "  span:  %v\n", r.Span)
	fmt.Fprintf(&b, "  first: %s\n", r.First.Format(time.RFC3339))
	fmt.Fprintf(&b, "  last:  %s\n", r.Last.Format(time.RFC3339))
	fmt.Fprintf(&b, "  quantity: %s", r.Quantity)
	return b.String()
}
