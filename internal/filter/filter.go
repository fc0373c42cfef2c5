// Package filter narrows which course records reach the preview and
// calendar surfaces.
//
// Criteria combine with AND across kinds and OR within a kind: a record
// passes when its day matches any requested day and its type matches any
// requested type. An empty filter matches everything.
package filter

import (
	"fmt"
	"strings"

	"github.com/sirapobp/regtable/internal/course"
)

// Filter holds the active criteria. Days are canonical MON..SUN labels;
// Types are canonical session types or raw badge text.
type Filter struct {
	Days  []string
	Types []string
}

// NewFilter creates an empty filter that matches all records.
func NewFilter() *Filter {
	return &Filter{}
}

// IsEmpty reports whether the filter has no active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Days) == 0 && len(f.Types) == 0
}

// Matches reports whether the record passes all active criteria.
func (f *Filter) Matches(r *course.Record) bool {
	if len(f.Days) > 0 {
		matched := false
		for _, day := range f.Days {
			if strings.EqualFold(r.Day, day) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Types) > 0 {
		matched := false
		for _, typ := range f.Types {
			if strings.EqualFold(r.Type, typ) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply returns the records that pass the filter, preserving input order.
// An empty filter returns the input unchanged.
func (f *Filter) Apply(records []*course.Record) []*course.Record {
	if f.IsEmpty() {
		return records
	}

	var filtered []*course.Record
	for _, r := range records {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// String renders the active criteria for log lines and verbose output.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "no active filters"
	}

	var parts []string
	if len(f.Days) > 0 {
		parts = append(parts, fmt.Sprintf("days: %s", strings.Join(f.Days, ", ")))
	}
	if len(f.Types) > 0 {
		parts = append(parts, fmt.Sprintf("types: %s", strings.Join(f.Types, ", ")))
	}
	return strings.Join(parts, " | ")
}
