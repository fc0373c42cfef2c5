package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/sirapobp/regtable/internal/grid"
)

// Tailwind classes per canonical day: block cells get the -600 shade, the
// sticky day label one step darker. Unknown day labels fall back to gray.
var (
	cellColors = map[string]string{
		"MON": "bg-yellow-600 text-white",
		"TUE": "bg-pink-600 text-white",
		"WED": "bg-green-600 text-white",
		"THU": "bg-orange-600 text-white",
		"FRI": "bg-blue-600 text-white",
		"SAT": "bg-purple-600 text-white",
		"SUN": "bg-red-600 text-white",
	}
	dayColors = map[string]string{
		"MON": "bg-yellow-700 text-white",
		"TUE": "bg-pink-700 text-white",
		"WED": "bg-green-700 text-white",
		"THU": "bg-orange-700 text-white",
		"FRI": "bg-blue-700 text-white",
		"SAT": "bg-purple-700 text-white",
		"SUN": "bg-red-700 text-white",
	}
)

const (
	defaultCellColor = "bg-gray-700 text-white"
	defaultDayColor  = "bg-gray-800 text-white"
)

// Page renders the complete schedule document: page shell, one header cell
// per slot boundary, one row per day.
func Page(g *grid.Grid, title string) string {
	var page strings.Builder

	page.WriteString(fmt.Sprintf(pageTop, html.EscapeString(title), html.EscapeString(title)))

	width := 100.0 / float64(g.Axis.Slots+1)
	for _, label := range g.Axis.Labels() {
		page.WriteString(fmt.Sprintf(`<th class="px-4 py-3 w-[%.4f%%] border-l border-gray-800 text-center text-gray-300 font-medium whitespace-nowrap">%s</th>`, width, label))
	}
	page.WriteString("</tr></thead><tbody>")

	for _, row := range g.Rows {
		page.WriteString(dayRow(row))
	}

	page.WriteString(pageBottom)
	return page.String()
}

// dayRow renders one <tr>: the sticky day label, then every cell in slot
// order.
func dayRow(row grid.Row) string {
	var tr strings.Builder

	tr.WriteString(`<tr class="border-b border-gray-800">`)
	tr.WriteString(fmt.Sprintf(`<td class="sticky left-0 z-10 px-4 py-3 font-bold text-center %s whitespace-nowrap"> %s </td>`,
		dayColor(row.Day), html.EscapeString(row.Day)))

	for _, cell := range row.Cells {
		if cell.Empty() {
			tr.WriteString("<td></td>")
			continue
		}
		tr.WriteString(blockCell(row.Day, cell))
	}

	tr.WriteString("</tr>")
	return tr.String()
}

// blockCell renders an occupied block as one cell spanning its slots.
func blockCell(day string, cell grid.Cell) string {
	r := cell.Record
	return fmt.Sprintf(`
        <td colspan="%d" class="p-3 align-top %s rounded-lg shadow-md hover:shadow-lg transition-shadow duration-200">
            <div class="text-sm leading-tight">
                <div class="mb-1 font-semibold">[%s]</div>
                <div class="font-bold">%s</div>
                <div class="mb-1">%s</div>
                <div class="text-xs opacity-90">%s | %s %s</div>
            </div>
        </td>`,
		cell.Span,
		cellColor(day),
		html.EscapeString(r.TimeLabel()),
		html.EscapeString(r.Code),
		html.EscapeString(r.Title),
		html.EscapeString(r.Room),
		html.EscapeString(r.Type),
		html.EscapeString(r.Section),
	)
}

func cellColor(day string) string {
	if c, ok := cellColors[strings.ToUpper(strings.TrimSpace(day))]; ok {
		return c
	}
	return defaultCellColor
}

func dayColor(day string) string {
	if c, ok := dayColors[strings.ToUpper(strings.TrimSpace(day))]; ok {
		return c
	}
	return defaultDayColor
}

const pageTop = `<!doctype html>
<html lang="en" class="scroll-smooth">
<head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">
    <script src="https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"></script>
    <style>
        body {
            font-family: 'Inter', sans-serif;
        }
        ::-webkit-scrollbar {
            height: 8px;
            width: 8px;
        }
        ::-webkit-scrollbar-track {
            background: #1a202c;
        }
        ::-webkit-scrollbar-thumb {
            background: #4a5568;
            border-radius: 4px;
        }
        ::-webkit-scrollbar-thumb:hover {
            background: #6b7280;
        }
        .sticky-header-cell {
            z-index: 30;
        }
        .sticky-day-cell {
            z-index: 20;
        }
        .table-auto td {
            min-width: 6rem;
            height: 5rem;
            vertical-align: top;
        }
        .table-auto {
            border-collapse: collapse;
        }
        .table-auto th, .table-auto td {
            border-bottom: 1px solid #1f2937;
        }
        .table-auto tr:last-child td {
            border-bottom: none;
        }
    </style>
</head>
<body class="bg-[#0b0f1a] text-white min-h-screen flex flex-col items-center justify-center py-8">
    <h1 class="text-4xl font-extrabold mb-8 text-transparent bg-clip-text bg-gradient-to-r from-blue-400 to-purple-600">
        %s
    </h1>
    <div class="overflow-x-auto w-[90vw] rounded-xl shadow-2xl bg-[#111622] border border-gray-800">
        <table class="table-auto border-separate border-spacing-1 w-full text-sm">
            <thead>
                <tr class="bg-[#111622] sticky top-0 z-20">
                    <th class="sticky left-0 z-30 bg-[#111622] px-4 py-3 text-left font-semibold text-white rounded-tl-lg">Day/Time</th>`

const pageBottom = `</tbody></table>
    </div>
    <div class="text-right text-xs text-gray-400 p-4 mt-4 select-none">generated by regtable</div>
</body>
</html>`
