package filter

import (
	"fmt"
	"strings"

	"github.com/sirapobp/regtable/internal/course"
)

// Aliases accepted for the canonical session types on the command line.
var typeAliases = map[string]string{
	"lec":        course.TypeLecture,
	"lecture":    course.TypeLecture,
	"lab":        course.TypeLaboratory,
	"laboratory": course.TypeLaboratory,
}

// ParseDays converts a comma-separated day list ("mon,FRI") into canonical
// labels. Blank items are skipped; anything that is not a weekday label is
// an error.
func ParseDays(s string) ([]string, error) {
	var days []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := course.Weekday(item); !ok {
			return nil, fmt.Errorf("invalid day: %s (must be MON..SUN)", item)
		}
		days = append(days, strings.ToUpper(item))
	}
	return days, nil
}

// ParseTypes converts a comma-separated type list ("lec,lab") into
// canonical session types. Unrecognized names pass through as-is so raw
// badge text stays filterable.
func ParseTypes(s string) []string {
	var types []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if canonical, ok := typeAliases[strings.ToLower(item)]; ok {
			types = append(types, canonical)
			continue
		}
		types = append(types, item)
	}
	return types
}
