// Package preview renders a laid-out grid as a compact terminal listing,
// a quick check before committing to the full page render.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sirapobp/regtable/internal/grid"
)

// Per-day accent colors, roughly matching the rendered page's palette.
var dayAccents = map[string]lipgloss.Color{
	"MON": lipgloss.Color("220"),
	"TUE": lipgloss.Color("205"),
	"WED": lipgloss.Color("77"),
	"THU": lipgloss.Color("208"),
	"FRI": lipgloss.Color("75"),
	"SAT": lipgloss.Color("135"),
	"SUN": lipgloss.Color("196"),
}

const defaultAccent = lipgloss.Color("245")

var (
	timeStyle  = lipgloss.NewStyle().Bold(true)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Render lists every day in grid order: a colored day header, then each
// block in slot order, one line per meeting.
func Render(g *grid.Grid) string {
	var out strings.Builder
	titler := cases.Title(language.English)

	for i, row := range g.Rows {
		if i > 0 {
			out.WriteString("\n")
		}

		headerStyle := lipgloss.NewStyle().Foreground(accent(row.Day)).Bold(true)
		out.WriteString(headerStyle.Render(titler.String(strings.ToLower(row.Day))))
		out.WriteString("\n")

		blocks := row.Blocks()
		if len(blocks) == 0 {
			out.WriteString("  " + emptyStyle.Render("no classes") + "\n")
			continue
		}

		for _, cell := range blocks {
			r := cell.Record
			out.WriteString(fmt.Sprintf("  %s %s %s (%s | %s %s)\n",
				timeStyle.Render(r.TimeLabel()),
				r.Code,
				r.Title,
				r.Room,
				r.Type,
				r.Section,
			))
		}
	}

	return out.String()
}

func accent(day string) lipgloss.Color {
	if c, ok := dayAccents[strings.ToUpper(strings.TrimSpace(day))]; ok {
		return c
	}
	return defaultAccent
}
