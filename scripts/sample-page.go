package main

import (
	"fmt"
	"os"

	"github.com/sirapobp/regtable/internal/config"
	"github.com/sirapobp/regtable/internal/course"
	"github.com/sirapobp/regtable/internal/grid"
	"github.com/sirapobp/regtable/internal/preview"
	"github.com/sirapobp/regtable/internal/render"
)

func main() {
	// A small sample week covering both session types
	records := []*course.Record{
		{
			Day:      "MON",
			Start:    "09:00",
			Duration: "01:30",
			Code:     "CS101",
			Title:    "Intro to Computing",
			Room:     "CB2305",
			Type:     course.TypeLecture,
			Section:  "1",
		},
		{
			Day:      "MON",
			Start:    "13:00",
			Duration: "03:00",
			Code:     "CS102",
			Title:    "Programming Workshop",
			Room:     "LAB-3",
			Type:     course.TypeLaboratory,
			Section:  "1",
		},
		{
			Day:      "TUE",
			Start:    "13:00",
			Duration: "03:00",
			Code:     "CS215",
			Title:    "โครงสร้างข้อมูล",
			Room:     "LAB-42",
			Type:     course.TypeLaboratory,
			Section:  "2",
		},
		{
			Day:      "FRI",
			Start:    "10:30",
			Duration: "01:30",
			Code:     "GE142",
			Title:    "Academic Writing",
			Room:     "HUM-201",
			Type:     course.TypeLecture,
			Section:  "8",
		},
	}

	cfg := config.Default()
	g, warnings := grid.Build(records, cfg.Axis(), cfg.Days)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	filename := "sample-schedule.html"
	page := render.Page(g, "Sample Weekly Schedule")
	if err := os.WriteFile(filename, []byte(page), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s (%d bytes)\n\n", filename, len(page))
	fmt.Print(preview.Render(g))
	fmt.Println("\nOpen the file in a browser to see the rendered schedule.")
}
