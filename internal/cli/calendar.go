package cli

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirapobp/regtable/internal/calendar"
	"github.com/sirapobp/regtable/internal/filter"
	"github.com/sirapobp/regtable/internal/logger"
)

var (
	flagCalendarOutput string
	flagCalendarWeekOf string
	flagCalendarDays   string
	flagCalendarTypes  string
	flagCalendarFormat string
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [courses.json]",
		Short: "Export the records as an iCalendar file",
		Long: `Export the extracted records as iCalendar events anchored on one
concrete week, ready to import into Google Calendar, Outlook, or Apple
Calendar. Records without a usable day or time range are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCalendar,
	}

	cmd.Flags().StringVarP(&flagCalendarOutput, "output", "o", "schedule.ics", "Calendar file to write ('-' for stdout)")
	cmd.Flags().StringVar(&flagCalendarWeekOf, "week-of", "", "Anchor on the week containing this date (YYYY-MM-DD; default: today)")
	cmd.Flags().StringVar(&flagCalendarDays, "days", "", "Only these days (comma-separated, e.g. mon,wed)")
	cmd.Flags().StringVar(&flagCalendarTypes, "types", "", "Only these session types (e.g. lec,lab)")
	cmd.Flags().StringVar(&flagCalendarFormat, "format", "", "Record format: json or csv (default: by input extension)")

	return cmd
}

func runCalendar(cmd *cobra.Command, args []string) error {
	input := "courses.json"
	if len(args) == 1 {
		input = args[0]
	}

	records, err := loadRecords(input, flagCalendarFormat)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", input)
	}

	f := filter.NewFilter()
	if flagCalendarDays != "" {
		if f.Days, err = filter.ParseDays(flagCalendarDays); err != nil {
			return err
		}
	}
	if flagCalendarTypes != "" {
		f.Types = filter.ParseTypes(flagCalendarTypes)
	}
	records = f.Apply(records)

	anchor := time.Now()
	if flagCalendarWeekOf != "" {
		anchor, err = time.Parse("2006-01-02", flagCalendarWeekOf)
		if err != nil {
			return fmt.Errorf("invalid --week-of date: %s (use YYYY-MM-DD)", flagCalendarWeekOf)
		}
	}

	started := time.Now()
	var buf bytes.Buffer
	count, err := calendar.GenerateICS(records, anchor, &buf)
	if err != nil {
		return err
	}
	logger.RecordTiming("stage.calendar", time.Since(started))

	if count == 0 {
		logger.Warn("no exportable records", logger.Fields{
			"input":  input,
			"filter": f.String(),
		})
	}

	if err := writeOutput(flagCalendarOutput, buf.Bytes()); err != nil {
		return err
	}

	logger.Info("calendar written", logger.Fields{
		"output": flagCalendarOutput,
		"events": count,
	})
	dumpMetrics()
	return nil
}
