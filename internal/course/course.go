package course

import (
	"fmt"
	"strings"
	"time"
)

// NA is the sentinel stored in any field whose marker was missing from the
// source card. It survives serialization round trips unchanged.
const NA = "N/A"

// Canonical session types. Badges in either source language map onto these.
const (
	TypeLecture    = "Lecture"
	TypeLaboratory = "Laboratory"
)

// Record is one class meeting extracted from a registration page card.
// All fields are strings; see the package doc for why.
type Record struct {
	Day      string `json:"day" csv:"day"`
	Start    string `json:"start" csv:"start"`
	Duration string `json:"duration" csv:"duration"`
	Code     string `json:"code" csv:"code"`
	Title    string `json:"title" csv:"title"`
	Room     string `json:"room" csv:"room"`
	Type     string `json:"type" csv:"type"`
	Section  string `json:"section" csv:"section"`
}

// StartMinutes parses the start field into minutes since midnight.
// ok is false when the field is the sentinel or not a clock time.
func (r *Record) StartMinutes() (int, bool) {
	return ParseClock(r.Start)
}

// DurationMinutes parses the duration field (HH:MM) into minutes.
// ok is false when the field is the sentinel or not parseable.
func (r *Record) DurationMinutes() (int, bool) {
	return ParseClock(r.Duration)
}

// EndMinutes returns the end of the meeting in minutes since midnight,
// wrapped onto the 24-hour clock for sessions that cross midnight.
func (r *Record) EndMinutes() (int, bool) {
	start, ok := r.StartMinutes()
	if !ok {
		return 0, false
	}
	dur, ok := r.DurationMinutes()
	if !ok {
		return 0, false
	}
	return (start + dur) % minutesPerDay, true
}

// Placeable reports whether the record carries a usable time range and can
// be laid onto a grid.
func (r *Record) Placeable() bool {
	_, startOK := r.StartMinutes()
	_, durOK := r.DurationMinutes()
	return startOK && durOK
}

// TimeLabel formats the meeting's display range, e.g. "09:00-10:30".
// Returns the sentinel when the record is not placeable.
func (r *Record) TimeLabel() string {
	start, ok := r.StartMinutes()
	if !ok {
		return NA
	}
	end, ok := r.EndMinutes()
	if !ok {
		return NA
	}
	return fmt.Sprintf("%s-%s", FormatClock(start), FormatClock(end))
}

// Weekday maps a canonical day label (MON..SUN, any case) to its weekday.
// ok is false for anything outside the seven labels.
func Weekday(day string) (time.Weekday, bool) {
	switch strings.ToUpper(strings.TrimSpace(day)) {
	case "MON":
		return time.Monday, true
	case "TUE":
		return time.Tuesday, true
	case "WED":
		return time.Wednesday, true
	case "THU":
		return time.Thursday, true
	case "FRI":
		return time.Friday, true
	case "SAT":
		return time.Saturday, true
	case "SUN":
		return time.Sunday, true
	}
	return 0, false
}
