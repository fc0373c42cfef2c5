package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirapobp/regtable/internal/logger"
	"github.com/sirapobp/regtable/internal/render"
)

var (
	flagRenderOutput string
	flagRenderFormat string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [courses.json]",
		Short: "Render a record file into a static timetable page",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}

	cmd.Flags().StringVarP(&flagRenderOutput, "output", "o", "schedule.html", "Page file to write ('-' for stdout)")
	cmd.Flags().StringVar(&flagRenderFormat, "format", "", "Record format: json or csv (default: by input extension)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input := "courses.json"
	if len(args) == 1 {
		input = args[0]
	}

	records, err := loadRecords(input, flagRenderFormat)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no records in %s", input)
	}

	g := buildGrid(records, cfg, cfg.Days)

	started := time.Now()
	page := render.Page(g, cfg.PageTitle)
	logger.RecordTiming("stage.render", time.Since(started))

	if err := writeOutput(flagRenderOutput, []byte(page)); err != nil {
		return err
	}

	logger.Info("page rendered", logger.Fields{
		"output":  flagRenderOutput,
		"records": len(records),
		"days":    len(cfg.Days),
		"slots":   cfg.Axis().Slots,
	})
	dumpMetrics()
	return nil
}
