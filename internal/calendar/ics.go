// Package calendar exports course records as iCalendar events importable
// into Google Calendar, Outlook, or Apple Calendar.
//
// Records are purely week-relative (a day label plus a time range), so the
// export anchors them onto a concrete week: each record lands on its
// weekday's occurrence in the week containing the anchor date. Records
// without a usable day or time range are skipped rather than exported
// half-filled.
package calendar

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/sirapobp/regtable/internal/course"
)

// GenerateICS writes one VEVENT per placeable record and returns how many
// were exported. The anchor may be any time inside the target week.
func GenerateICS(records []*course.Record, anchor time.Time, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	monday := startOfWeek(anchor)
	now := time.Now()
	count := 0

	for i, r := range records {
		weekday, ok := course.Weekday(r.Day)
		if !ok {
			continue
		}
		startMin, ok := r.StartMinutes()
		if !ok {
			continue
		}
		durMin, ok := r.DurationMinutes()
		if !ok {
			continue
		}

		day := monday.AddDate(0, 0, offsetFromMonday(weekday))
		start := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, day.Location())
		end := start.Add(time.Duration(durMin) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s-%d@regtable", start.Format("20060102T1504"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(summary(r))
		if r.Room != course.NA {
			event.SetLocation(r.Room)
		}
		event.SetDescription(fmt.Sprintf("Type: %s\nSection: %s", r.Type, r.Section))
		count++
	}

	if err := cal.SerializeTo(w); err != nil {
		return count, fmt.Errorf("serializing calendar: %w", err)
	}
	return count, nil
}

// summary builds the event title from whichever of code and title the
// record still carries.
func summary(r *course.Record) string {
	switch {
	case r.Code != course.NA && r.Title != course.NA:
		return fmt.Sprintf("%s %s", r.Code, r.Title)
	case r.Code != course.NA:
		return r.Code
	case r.Title != course.NA:
		return r.Title
	}
	return "Class"
}

// startOfWeek returns the Monday of t's week at midnight.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.AddDate(0, 0, -offsetFromMonday(t.Weekday()))
}

// offsetFromMonday counts days from Monday to d within one week.
func offsetFromMonday(d time.Weekday) int {
	return (int(d) + 6) % 7
}
