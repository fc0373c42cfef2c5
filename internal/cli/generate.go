package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirapobp/regtable/internal/logger"
	"github.com/sirapobp/regtable/internal/render"
	"github.com/sirapobp/regtable/internal/store"
)

var (
	flagGenerateOutput       string
	flagGenerateIntermediate string
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <registration.html>",
		Short: "Extract and render in one shot",
		Long: `Run the whole pipeline at once: parse the registration page, lay the
records onto the week grid, and write the timetable page. Pass
--intermediate to also keep the extracted records for later reruns.`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&flagGenerateOutput, "output", "o", "schedule.html", "Page file to write ('-' for stdout)")
	cmd.Flags().StringVar(&flagGenerateIntermediate, "intermediate", "", "Also write the extracted records to this file")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := extractRecords(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no course cards in %s", args[0])
	}

	if flagGenerateIntermediate != "" {
		format := store.DetectFormat(flagGenerateIntermediate)
		if err := store.Save(flagGenerateIntermediate, records, format); err != nil {
			return err
		}
		logger.Info("records written", logger.Fields{
			"output": flagGenerateIntermediate,
			"format": string(format),
		})
	}

	g := buildGrid(records, cfg, cfg.Days)

	started := time.Now()
	page := render.Page(g, cfg.PageTitle)
	logger.RecordTiming("stage.render", time.Since(started))

	if err := writeOutput(flagGenerateOutput, []byte(page)); err != nil {
		return err
	}

	logger.Info("page rendered", logger.Fields{
		"output":  flagGenerateOutput,
		"records": len(records),
	})
	dumpMetrics()
	return nil
}
