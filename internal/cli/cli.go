package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirapobp/regtable/internal/config"
	"github.com/sirapobp/regtable/internal/course"
	"github.com/sirapobp/regtable/internal/extract"
	"github.com/sirapobp/regtable/internal/grid"
	"github.com/sirapobp/regtable/internal/logger"
	"github.com/sirapobp/regtable/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command and wires up the subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regtable",
		Short: "Turn a university registration export into a weekly timetable",
		Long: `regtable parses the course cards of a saved registration page, lays
them onto a week grid, and renders a static timetable page.

The stages run separately (extract, render) or in one shot (generate);
preview and calendar work from the same extracted records.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON config file")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newExtractCmd(),
		newRenderCmd(),
		newGenerateCmd(),
		newPreviewCmd(),
		newCalendarCmd(),
	)

	return cmd
}

// loadConfig resolves the display window: the file named by --config, or
// the stock defaults when the flag is unset.
func loadConfig() (config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}

// readInput opens an input path, with "-" meaning stdin.
func readInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// writeOutput writes data to path, with "-" meaning stdout.
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// loadRecords reads an intermediate record file, with "-" meaning stdin.
// Files pick their format by extension (stdin defaults to JSON); a non-empty
// formatName overrides the detection.
func loadRecords(path, formatName string) ([]*course.Record, error) {
	format := store.DetectFormat(path)
	if formatName != "" {
		var err error
		if format, err = store.ParseFormat(formatName); err != nil {
			return nil, err
		}
	}
	if path == "-" {
		return store.Read(os.Stdin, format)
	}
	return store.Load(path, format)
}

// extractRecords parses the registration page at path and logs what it
// found.
func extractRecords(path string) ([]*course.Record, error) {
	in, err := readInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close() // nolint:errcheck

	started := time.Now()
	records, err := extract.Records(in)
	if err != nil {
		return nil, fmt.Errorf("extracting records: %w", err)
	}
	logger.RecordTiming("stage.extract", time.Since(started))
	logger.AddCounter("records.extracted", int64(len(records)))

	placeable := 0
	for _, r := range records {
		if r.Placeable() {
			placeable++
		}
	}
	logger.Info("records extracted", logger.Fields{
		"input":     path,
		"count":     len(records),
		"placeable": placeable,
	})
	if len(records) == 0 {
		logger.Warn("no course cards found", logger.Fields{"input": path})
	}

	return records, nil
}

// buildGrid lays the records onto the configured axis and logs every
// layout warning. Layout never fails; a record that cannot be placed is
// reported and dropped from the grid.
func buildGrid(records []*course.Record, cfg config.Config, days []string) *grid.Grid {
	started := time.Now()
	g, warnings := grid.Build(records, cfg.Axis(), days)
	logger.RecordTiming("stage.layout", time.Since(started))
	logger.AddCounter("layout.warnings", int64(len(warnings)))

	for _, w := range warnings {
		logger.IncrCounter("layout.warnings." + w.Code)
		logger.Warn("layout warning", logger.Fields{
			"code":   w.Code,
			"day":    w.Day,
			"course": w.Course,
			"detail": w.Detail,
		})
	}

	return g
}

// dumpMetrics logs the run's metrics snapshot; visible with --verbose.
func dumpMetrics() {
	logger.Debug("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
