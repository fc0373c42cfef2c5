package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirapobp/regtable/internal/course"
)

// Warning codes reported by Build.
const (
	WarnUnparseableTime = "unparseable-time"
	WarnUnknownDay      = "unknown-day"
	WarnOffAxis         = "off-axis"
	WarnOverlap         = "overlap"
	WarnTruncated       = "truncated"
)

// Warning flags a record that could not be placed cleanly. Layout never
// fails outright; it degrades and reports.
type Warning struct {
	Code   string
	Day    string
	Course string
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s %s: %s", w.Code, w.Day, w.Course, w.Detail)
}

// Cell is one position in a day row: a free slot (nil Record, Span 1) or
// the start of an occupied block covering Span slots. Slots covered by a
// span are consumed by it and never appear as cells of their own.
type Cell struct {
	Record *course.Record
	Span   int
}

// Empty reports whether the cell is a free slot.
func (c Cell) Empty() bool {
	return c.Record == nil
}

// Row is one day's cell sequence. Cell spans always sum to the axis slot
// count.
type Row struct {
	Day   string
	Cells []Cell
}

// Width returns the row's total width in slot units.
func (r Row) Width() int {
	w := 0
	for _, c := range r.Cells {
		w += c.Span
	}
	return w
}

// Blocks returns the row's occupied cells in slot order.
func (r Row) Blocks() []Cell {
	blocks := make([]Cell, 0)
	for _, c := range r.Cells {
		if !c.Empty() {
			blocks = append(blocks, c)
		}
	}
	return blocks
}

// Grid is the fully laid-out week: one row per configured day, all aligned
// to the same axis.
type Grid struct {
	Axis Axis
	Rows []Row
}

// Build lays the records onto the axis, one row per day in the given
// order. Day matching is case-insensitive. Records whose day is not part
// of the week, or whose time range does not parse, occupy nothing and are
// reported as warnings.
func Build(records []*course.Record, axis Axis, days []string) (*Grid, []Warning) {
	g := &Grid{Axis: axis, Rows: make([]Row, 0, len(days))}
	var warnings []Warning

	for _, day := range days {
		row, w := buildRow(day, records, axis)
		g.Rows = append(g.Rows, row)
		warnings = append(warnings, w...)
	}

	// A record whose day matches no row would otherwise vanish without a
	// trace.
	for _, r := range records {
		if !dayKnown(r.Day, days) {
			warnings = append(warnings, Warning{
				Code:   WarnUnknownDay,
				Day:    r.Day,
				Course: r.Code,
				Detail: fmt.Sprintf("day %q is not part of the configured week", r.Day),
			})
		}
	}

	return g, warnings
}

// buildRow filters, sorts, and places one day's records.
func buildRow(day string, records []*course.Record, axis Axis) (Row, []Warning) {
	var warnings []Warning

	todays := make([]*course.Record, 0)
	for _, r := range records {
		if !strings.EqualFold(r.Day, day) {
			continue
		}
		if !r.Placeable() {
			warnings = append(warnings, Warning{
				Code:   WarnUnparseableTime,
				Day:    day,
				Course: r.Code,
				Detail: fmt.Sprintf("time range %q + %q did not parse; not placed", r.Start, r.Duration),
			})
			continue
		}
		todays = append(todays, r)
	}

	// Equal start times keep their input order.
	sort.SliceStable(todays, func(i, j int) bool {
		a, _ := todays[i].StartMinutes()
		b, _ := todays[j].StartMinutes()
		return a < b
	})

	row := Row{Day: day, Cells: make([]Cell, 0, axis.Slots)}
	cursor := 0

	for _, r := range todays {
		start, _ := r.StartMinutes()
		dur, _ := r.DurationMinutes()

		slot := axis.SlotIndex(start)
		if slot < 0 || slot >= axis.Slots {
			warnings = append(warnings, Warning{
				Code:   WarnOffAxis,
				Day:    day,
				Course: r.Code,
				Detail: fmt.Sprintf("start %s is outside the %s-%s window", r.Start, course.FormatClock(axis.Start), course.FormatClock(axis.End())),
			})
			continue
		}

		if slot < cursor {
			// Floored starts can land on a slot an earlier block already
			// covers; the cursor never moves backward.
			warnings = append(warnings, Warning{
				Code:   WarnOverlap,
				Day:    day,
				Course: r.Code,
				Detail: fmt.Sprintf("overlaps the previous block; shifted from slot %d to %d", slot, cursor),
			})
			slot = cursor
		}
		if slot >= axis.Slots {
			warnings = append(warnings, Warning{
				Code:   WarnOverlap,
				Day:    day,
				Course: r.Code,
				Detail: "no slots left after the previous block; not placed",
			})
			continue
		}

		for cursor < slot {
			row.Cells = append(row.Cells, Cell{Span: 1})
			cursor++
		}

		span := (dur + axis.SlotMinutes - 1) / axis.SlotMinutes
		if span < 1 {
			span = 1
		}
		if slot+span > axis.Slots {
			warnings = append(warnings, Warning{
				Code:   WarnTruncated,
				Day:    day,
				Course: r.Code,
				Detail: fmt.Sprintf("runs past %s; clipped to the end of the axis", course.FormatClock(axis.End())),
			})
			span = axis.Slots - slot
		}

		row.Cells = append(row.Cells, Cell{Record: r, Span: span})
		cursor += span
	}

	for cursor < axis.Slots {
		row.Cells = append(row.Cells, Cell{Span: 1})
		cursor++
	}

	return row, warnings
}

func dayKnown(day string, days []string) bool {
	for _, d := range days {
		if strings.EqualFold(day, d) {
			return true
		}
	}
	return false
}
