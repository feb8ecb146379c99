package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gauge/internal/store"
)

// ReadingsFile is the YAML shape consumed by the record command.
type ReadingsFile struct {
	Series   string `yaml:"series"`
	Readings []struct {
		Value float64    `yaml:"value"`
		At    *time.Time `yaml:"at,omitempty"`
	} `yaml:"readings"`
}

// RecordResult is the JSON payload for a record run.
type RecordResult struct {
	Series   string `json:"series"`
	Recorded int    `json:"recorded"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	var database string

	cmd := &cobra.Command{
		Use:   "record <readings-file>...",
		Short: "Append reading files to the series log",
		Long: `Append YAML readings files to the SQLite reading log.

Each file carries one named series and its readings. A reading without
an explicit timestamp is stamped with the current time:

  series: temperature
  readings:
    - {value: 20.5, at: 2025-01-01T00:00:00Z}
    - {value: 19.0, at: 2025-01-01T00:01:00Z}

Example:
  gauge record --db ./gauge.db readings/morning.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(rootOpts, database, args, cmd)
		},
	}

	cmd.Flags().StringVar(&database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRecord(opts *RootOptions, database string, files []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	st, err := store.Open(database)
	if err != nil {
		if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := context.Background()
	results := make([]RecordResult, 0, len(files))

	for _, file := range files {
		rf, err := loadReadingsFile(file)
		if err != nil {
			if outErr := formatter.Error(ErrCodeBadReadings, err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "failed to load readings file", err)
		}
		logger.Debug("recording readings", "file", file, "series", rf.Series, "count", len(rf.Readings))

		for _, r := range rf.Readings {
			at := time.Now().UTC()
			if r.At != nil {
				at = *r.At
			}
			if _, err := st.WriteReading(ctx, store.Reading{Series: rf.Series, Value: r.Value, RecordedAt: at}); err != nil {
				if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
					return outErr
				}
				return WrapExitError(ExitCommandError, "failed to write reading", err)
			}
		}
		results = append(results, RecordResult{Series: rf.Series, Recorded: len(rf.Readings)})
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "recorded %d reading(s) for %s\n", r.Recorded, r.Series)
	}
	return nil
}

// loadReadingsFile parses a YAML readings file and validates its shape.
func loadReadingsFile(path string) (*ReadingsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rf ReadingsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if rf.Series == "" {
		return nil, fmt.Errorf("%s: series name is required", path)
	}
	if len(rf.Readings) == 0 {
		return nil, fmt.Errorf("%s: at least one reading is required", path)
	}
	return &rf, nil
}
