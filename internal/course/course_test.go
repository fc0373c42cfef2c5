package course

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecord_TimeHelpers(t *testing.T) {
	tests := []struct {
		name      string
		record    Record
		start     int
		duration  int
		end       int
		placeable bool
	}{
		{
			name:      "regular lecture",
			record:    Record{Start: "09:00", Duration: "01:30"},
			start:     540,
			duration:  90,
			end:       630,
			placeable: true,
		},
		{
			name:      "crosses midnight",
			record:    Record{Start: "23:00", Duration: "02:00"},
			start:     1380,
			duration:  120,
			end:       60,
			placeable: true,
		},
		{
			name:      "sentinel duration",
			record:    Record{Start: "09:00", Duration: "N/A"},
			placeable: false,
		},
		{
			name:      "raw unparsed start",
			record:    Record{Start: "TBA", Duration: "N/A"},
			placeable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Placeable(); got != tt.placeable {
				t.Fatalf("Placeable() = %v, want %v", got, tt.placeable)
			}
			if !tt.placeable {
				return
			}

			if got, ok := tt.record.StartMinutes(); !ok || got != tt.start {
				t.Errorf("StartMinutes() = (%d, %v), want %d", got, ok, tt.start)
			}
			if got, ok := tt.record.DurationMinutes(); !ok || got != tt.duration {
				t.Errorf("DurationMinutes() = (%d, %v), want %d", got, ok, tt.duration)
			}
			if got, ok := tt.record.EndMinutes(); !ok || got != tt.end {
				t.Errorf("EndMinutes() = (%d, %v), want %d", got, ok, tt.end)
			}
		})
	}
}

func TestRecord_TimeLabel(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "regular range",
			record: Record{Start: "09:00", Duration: "01:30"},
			want:   "09:00-10:30",
		},
		{
			name:   "overnight range wraps",
			record: Record{Start: "23:00", Duration: "02:00"},
			want:   "23:00-01:00",
		},
		{
			name:   "unparseable falls back to sentinel",
			record: Record{Start: "TBA", Duration: "N/A"},
			want:   NA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.TimeLabel(); got != tt.want {
				t.Errorf("TimeLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		day  string
		want time.Weekday
		ok   bool
	}{
		{"MON", time.Monday, true},
		{"SUN", time.Sunday, true},
		{"tue", time.Tuesday, true},
		{" Fri ", time.Friday, true},
		{"N/A", 0, false},
		{"MONDAY", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			got, ok := Weekday(tt.day)
			if ok != tt.ok {
				t.Fatalf("Weekday(%q) ok = %v, want %v", tt.day, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Weekday(%q) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestRecord_JSONFields(t *testing.T) {
	rec := Record{
		Day:      "MON",
		Start:    "09:00",
		Duration: "01:30",
		Code:     "CS101",
		Title:    "Intro to Computing",
		Room:     "CB2305",
		Type:     TypeLecture,
		Section:  "1",
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var keys map[string]string
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := map[string]string{
		"day":      "MON",
		"start":    "09:00",
		"duration": "01:30",
		"code":     "CS101",
		"title":    "Intro to Computing",
		"room":     "CB2305",
		"type":     "Lecture",
		"section":  "1",
	}
	for k, v := range want {
		if keys[k] != v {
			t.Errorf("field %q = %q, want %q", k, keys[k], v)
		}
	}
}
