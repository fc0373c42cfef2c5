// Package config carries the display-window settings shared by the layout
// and render stages.
//
// Configuration is a small JSON file overlaid onto defaults; fields left
// out of the file keep their default values. The stock window is the full
// seven-day week on a 30-minute axis from 08:00 to 21:00.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirapobp/regtable/internal/course"
	"github.com/sirapobp/regtable/internal/grid"
)

// Config is the user-tunable part of the pipeline: which days render, the
// visible time window, the slot width, and the page title.
type Config struct {
	Days        []string `json:"days,omitempty"`
	DayStart    string   `json:"day_start,omitempty"`
	DayEnd      string   `json:"day_end,omitempty"`
	SlotMinutes int      `json:"slot_minutes,omitempty"`
	PageTitle   string   `json:"page_title,omitempty"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Days:        []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"},
		DayStart:    "08:00",
		DayEnd:      "21:00",
		SlotMinutes: 30,
		PageTitle:   "Weekly Schedule",
	}
}

// Load overlays the JSON file at path onto the defaults and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the window geometry. The window must divide evenly into
// slots so every boundary lands on a label.
func (c Config) Validate() error {
	if len(c.Days) == 0 {
		return fmt.Errorf("config: at least one day is required")
	}
	for _, day := range c.Days {
		if _, ok := course.Weekday(day); !ok {
			return fmt.Errorf("config: invalid day %q (must be MON..SUN)", day)
		}
	}

	start, ok := course.ParseClock(c.DayStart)
	if !ok {
		return fmt.Errorf("config: invalid day_start %q", c.DayStart)
	}
	end, ok := course.ParseClock(c.DayEnd)
	if !ok {
		return fmt.Errorf("config: invalid day_end %q", c.DayEnd)
	}
	if end <= start {
		return fmt.Errorf("config: day_end %s must be after day_start %s", c.DayEnd, c.DayStart)
	}
	if c.SlotMinutes <= 0 {
		return fmt.Errorf("config: slot_minutes must be positive, got %d", c.SlotMinutes)
	}
	if (end-start)%c.SlotMinutes != 0 {
		return fmt.Errorf("config: window %s-%s does not divide into %d-minute slots", c.DayStart, c.DayEnd, c.SlotMinutes)
	}
	return nil
}

// Axis derives the time axis for the configured window. The config must
// have passed Validate.
func (c Config) Axis() grid.Axis {
	start, _ := course.ParseClock(c.DayStart)
	end, _ := course.ParseClock(c.DayEnd)
	return grid.NewAxis(start, c.SlotMinutes, (end-start)/c.SlotMinutes)
}
