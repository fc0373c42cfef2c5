package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirapobp/regtable/internal/filter"
	"github.com/sirapobp/regtable/internal/logger"
	"github.com/sirapobp/regtable/internal/preview"
)

var (
	flagPreviewDays   string
	flagPreviewTypes  string
	flagPreviewFormat string
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [courses.json]",
		Short: "Print the laid-out week to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}

	cmd.Flags().StringVar(&flagPreviewDays, "days", "", "Only these days (comma-separated, e.g. mon,wed)")
	cmd.Flags().StringVar(&flagPreviewTypes, "types", "", "Only these session types (e.g. lec,lab)")
	cmd.Flags().StringVar(&flagPreviewFormat, "format", "", "Record format: json or csv (default: by input extension)")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := "courses.json"
	if len(args) == 1 {
		input = args[0]
	}

	records, err := loadRecords(input, flagPreviewFormat)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", input)
	}

	f := filter.NewFilter()
	if flagPreviewDays != "" {
		if f.Days, err = filter.ParseDays(flagPreviewDays); err != nil {
			return err
		}
	}
	if flagPreviewTypes != "" {
		f.Types = filter.ParseTypes(flagPreviewTypes)
	}
	if !f.IsEmpty() {
		logger.Debug("filtering records", logger.Fields{"filter": f.String()})
	}

	// A day filter narrows the rows too, not just the records.
	days := cfg.Days
	if len(f.Days) > 0 {
		days = f.Days
	}

	g := buildGrid(f.Apply(records), cfg, days)
	fmt.Print(preview.Render(g))

	dumpMetrics()
	return nil
}
