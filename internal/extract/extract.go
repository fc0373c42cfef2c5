package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sirapobp/regtable/internal/course"
)

// Field markers of the registration page's card template. Day, time, code,
// and section are pinned by style or class attributes; room and type are
// located through label text.
const (
	cardSelector    = "div.card"
	daySelector     = `div[style="font-weight: 600; font-size: 10px;"]`
	timeSelector    = `div[style="font-weight: 500; font-size: 18px;"]`
	codeSelector    = `div[style="font-weight: 600; font-size: 12px;"]`
	titleSelector   = "div.cut-word"
	badgeSelector   = "span.badge-blue, span.badge-orange"
	sectionSelector = `span[style="color: rgb(10, 187, 135);"]`
)

// The two template dialects label the same fields with different text.
var (
	roomLabels = []string{"Room", "ห้อง"}

	typeLabels = map[string]string{
		"Lec":     course.TypeLecture,
		"บรรยาย":  course.TypeLecture,
		"Lab":     course.TypeLaboratory,
		"ปฏิบัติ": course.TypeLaboratory,
	}
)

// Records parses a registration-page export and returns one record per
// course card, in document order. The only error is a reader or tokenizer
// failure; missing fields degrade to the sentinel instead.
func Records(r io.Reader) ([]*course.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	records := make([]*course.Record, 0)
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		records = append(records, parseCard(card))
	})

	return records, nil
}

// parseCard reads one card's fields. Each lookup is independent, so one
// missing marker leaves the other fields intact.
func parseCard(card *goquery.Selection) *course.Record {
	rec := &course.Record{
		Day:     textOrNA(card.Find(daySelector)),
		Code:    textOrNA(card.Find(codeSelector)),
		Title:   textOrNA(card.Find(titleSelector)),
		Room:    roomField(card),
		Type:    typeField(card),
		Section: textOrNA(card.Find(sectionSelector)),
	}
	rec.Start, rec.Duration = timeRange(textOrNA(card.Find(timeSelector)))
	return rec
}

// textOrNA returns the first match's cleaned text, or the sentinel when the
// marker is absent or empty.
func textOrNA(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return course.NA
	}
	if t := clean(sel.First().Text()); t != "" {
		return t
	}
	return course.NA
}

// roomField locates the span carrying a room label in either dialect and
// returns its enclosing container's text with the label stripped.
func roomField(card *goquery.Selection) string {
	room := course.NA
	card.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		for _, label := range roomLabels {
			if !strings.Contains(span.Text(), label) {
				continue
			}
			container := span.Closest("div")
			if container.Length() == 0 {
				continue
			}
			if v := clean(strings.ReplaceAll(container.Text(), label, "")); v != "" {
				room = v
			}
			return false
		}
		return true
	})
	return room
}

// typeField reads the session badge and maps either vocabulary onto the
// canonical types. Unrecognized badge text passes through unchanged so
// unusual session kinds still display.
func typeField(card *goquery.Selection) string {
	text := textOrNA(card.Find(badgeSelector))
	if text == course.NA {
		return course.NA
	}
	if canonical, ok := typeLabels[text]; ok {
		return canonical
	}
	return text
}

// timeRange splits an "HH:MM - HH:MM" field into a normalized start time
// and an HH:MM duration. End times earlier than the start are overnight
// sessions and get a day added before subtracting. A side that does not
// parse keeps the raw start text with an N/A duration, leaving the record
// visible but unplaceable.
func timeRange(field string) (start, duration string) {
	if field == course.NA {
		return course.NA, course.NA
	}
	rawStart, rawEnd, found := strings.Cut(field, " - ")
	if !found {
		return course.NA, course.NA
	}

	start = strings.TrimSpace(rawStart)
	if start == "" {
		start = course.NA
	}
	duration = course.NA

	startMin, startOK := course.ParseClock(rawStart)
	endMin, endOK := course.ParseClock(rawEnd)
	if !startOK || !endOK {
		return start, duration
	}

	if endMin < startMin {
		endMin += 24 * 60
	}
	return course.FormatClock(startMin), course.FormatSpan(endMin - startMin)
}

// clean trims text and collapses the whitespace runs left behind by the
// source document's indentation.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
