package extract

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/sirapobp/regtable/internal/course"
)

const englishCard = `
<html><body>
<div class="card">
	<div style="font-weight: 600; font-size: 10px;">MON</div>
	<div style="font-weight: 500; font-size: 18px;">09:00 - 10:30</div>
	<div style="font-weight: 600; font-size: 12px;">CS101</div>
	<div class="cut-word">Intro to Computing</div>
	<div><span>Room</span> CB2305</div>
	<span class="badge-blue">Lec</span>
	<span style="color: rgb(10, 187, 135);">1</span>
</div>
</body></html>`

const thaiCard = `
<html><body>
<div class="card">
	<div style="font-weight: 600; font-size: 10px;">TUE</div>
	<div style="font-weight: 500; font-size: 18px;">13:00 - 16:00</div>
	<div style="font-weight: 600; font-size: 12px;">CS215</div>
	<div class="cut-word">โครงสร้างข้อมูล</div>
	<div><span>ห้อง</span> LAB-42</div>
	<span class="badge-orange">ปฏิบัติ</span>
	<span style="color: rgb(10, 187, 135);">2</span>
</div>
</body></html>`

func one(t *testing.T, html string) *course.Record {
	t.Helper()
	records, err := Records(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	return records[0]
}

func TestRecords_EnglishCard(t *testing.T) {
	got := one(t, englishCard)

	want := &course.Record{
		Day:      "MON",
		Start:    "09:00",
		Duration: "01:30",
		Code:     "CS101",
		Title:    "Intro to Computing",
		Room:     "CB2305",
		Type:     course.TypeLecture,
		Section:  "1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

func TestRecords_ThaiCard(t *testing.T) {
	got := one(t, thaiCard)

	want := &course.Record{
		Day:      "TUE",
		Start:    "13:00",
		Duration: "03:00",
		Code:     "CS215",
		Title:    "โครงสร้างข้อมูล",
		Room:     "LAB-42",
		Type:     course.TypeLaboratory,
		Section:  "2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("record = %+v, want %+v", got, want)
	}
}

// Both dialects of the card template must resolve to identical records when
// they describe the same meeting.
func TestRecords_DialectEquivalence(t *testing.T) {
	const english = `
<div class="card">
	<div style="font-weight: 600; font-size: 10px;">WED</div>
	<div style="font-weight: 500; font-size: 18px;">10:00 - 12:00</div>
	<div style="font-weight: 600; font-size: 12px;">PH110</div>
	<div class="cut-word">Physics</div>
	<div><span>Room</span> SC-204</div>
	<span class="badge-blue">Lec</span>
	<span style="color: rgb(10, 187, 135);">3</span>
</div>`
	const thai = `
<div class="card">
	<div style="font-weight: 600; font-size: 10px;">WED</div>
	<div style="font-weight: 500; font-size: 18px;">10:00 - 12:00</div>
	<div style="font-weight: 600; font-size: 12px;">PH110</div>
	<div class="cut-word">Physics</div>
	<div><span>ห้อง</span> SC-204</div>
	<span class="badge-blue">บรรยาย</span>
	<span style="color: rgb(10, 187, 135);">3</span>
</div>`

	gotEnglish := one(t, english)
	gotThai := one(t, thai)

	if !reflect.DeepEqual(gotEnglish, gotThai) {
		t.Errorf("dialects diverge:\n english = %+v\n thai    = %+v", gotEnglish, gotThai)
	}
}

func TestRecords_MissingMarkersDegradeToSentinel(t *testing.T) {
	const bare = `<div class="card"><p>unstructured content</p></div>`

	got := one(t, bare)

	want := &course.Record{
		Day:      course.NA,
		Start:    course.NA,
		Duration: course.NA,
		Code:     course.NA,
		Title:    course.NA,
		Room:     course.NA,
		Type:     course.NA,
		Section:  course.NA,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("record = %+v, want all sentinels", got)
	}
}

func TestRecords_TimeRangeVariants(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		start    string
		duration string
	}{
		{
			name:     "normalizes single digit hours",
			field:    "9:00 - 10:30",
			start:    "09:00",
			duration: "01:30",
		},
		{
			name:     "overnight session adds a day",
			field:    "23:00 - 01:00",
			start:    "23:00",
			duration: "02:00",
		},
		{
			name:     "zero length",
			field:    "10:00 - 10:00",
			start:    "10:00",
			duration: "00:00",
		},
		{
			name:     "unparseable end keeps raw start",
			field:    "09:00 - later",
			start:    "09:00",
			duration: "N/A",
		},
		{
			name:     "unparseable start keeps raw text",
			field:    "TBA - 10:00",
			start:    "TBA",
			duration: "N/A",
		},
		{
			name:     "no separator",
			field:    "sometime",
			start:    "N/A",
			duration: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<div class="card"><div style="font-weight: 500; font-size: 18px;">` +
				tt.field + `</div></div>`
			got := one(t, html)

			if got.Start != tt.start {
				t.Errorf("Start = %q, want %q", got.Start, tt.start)
			}
			if got.Duration != tt.duration {
				t.Errorf("Duration = %q, want %q", got.Duration, tt.duration)
			}
		})
	}
}

func TestRecords_UnrecognizedBadgePassesThrough(t *testing.T) {
	const html = `
<div class="card">
	<span class="badge-blue">Seminar</span>
</div>`

	got := one(t, html)
	if got.Type != "Seminar" {
		t.Errorf("Type = %q, want raw badge text", got.Type)
	}
}

func TestRecords_RoomLabelWithoutValue(t *testing.T) {
	const html = `
<div class="card">
	<div><span>Room</span></div>
</div>`

	got := one(t, html)
	if got.Room != course.NA {
		t.Errorf("Room = %q, want sentinel for empty label", got.Room)
	}
}

func TestRecords_DocumentOrderAndCount(t *testing.T) {
	combined := `<html><body>` +
		cardOnly(englishCard) + cardOnly(thaiCard) +
		`</body></html>`

	records, err := Records(strings.NewReader(combined))
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Code != "CS101" || records[1].Code != "CS215" {
		t.Errorf("order = %s, %s, want CS101 then CS215", records[0].Code, records[1].Code)
	}
}

func TestRecords_NoCards(t *testing.T) {
	records, err := Records(strings.NewReader(`<html><body><p>nothing here</p></body></html>`))
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestRecords_WhitespaceIsCollapsed(t *testing.T) {
	const html = `
<div class="card">
	<div class="cut-word">
		Intro to
		Computing
	</div>
</div>`

	got := one(t, html)
	if got.Title != "Intro to Computing" {
		t.Errorf("Title = %q, want collapsed whitespace", got.Title)
	}
}

// cardOnly strips the page shell from the shared fixtures so they can be
// combined into one document.
func cardOnly(fixture string) string {
	s := strings.ReplaceAll(fixture, "<html><body>", "")
	return strings.ReplaceAll(s, "</body></html>", "")
}

func fromFixture(t *testing.T, name string) []*course.Record {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	records, err := Records(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	return records
}

// The English and Thai exports of the same enrollment describe the same
// four meetings; the extractor must not see a difference.
func TestRecords_FixturePages(t *testing.T) {
	english := fromFixture(t, "sample_registration_en.html")
	thai := fromFixture(t, "sample_registration_th.html")

	if len(english) != 4 {
		t.Fatalf("got %d English records, want 4", len(english))
	}
	if !reflect.DeepEqual(english, thai) {
		t.Errorf("fixture pages diverge:\n english = %+v\n thai    = %+v", english, thai)
	}

	want := &course.Record{
		Day:      "MON",
		Start:    "09:00",
		Duration: "01:30",
		Code:     "CS101",
		Title:    "Introduction to Computing",
		Room:     "CB2305",
		Type:     course.TypeLecture,
		Section:  "1",
	}
	if !reflect.DeepEqual(english[0], want) {
		t.Errorf("record 0 = %+v, want %+v", english[0], want)
	}
	if english[1].Type != course.TypeLaboratory || english[1].Room != "LAB-3" {
		t.Errorf("record 1 = %+v, want the LAB-3 laboratory", english[1])
	}
}

// A page mixing both dialects with a TBA meeting and a gutted card still
// yields one record per card, degraded fields and all.
func TestRecords_MixedFixture(t *testing.T) {
	records := fromFixture(t, "sample_registration_mixed.html")

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	if records[0].Type != course.TypeLaboratory || records[0].Room != "LAB-42" {
		t.Errorf("Thai card = %+v, want the LAB-42 laboratory", records[0])
	}
	if records[1].Type != course.TypeLecture || records[1].Room != "SC-204" {
		t.Errorf("English card = %+v, want the SC-204 lecture", records[1])
	}

	tba := records[2]
	if tba.Code != "CS490" || tba.Start != course.NA || tba.Duration != course.NA {
		t.Errorf("TBA card = %+v, want CS490 with sentinel times", tba)
	}
	if tba.Placeable() {
		t.Error("TBA card should not be placeable")
	}
	if tba.Room != course.NA || tba.Section != course.NA {
		t.Errorf("TBA card = %+v, want sentinel room and section", tba)
	}

	gutted := records[3]
	if gutted.Code != "XX000" {
		t.Errorf("gutted card code = %q, want XX000", gutted.Code)
	}
	for field, got := range map[string]string{
		"Day":   gutted.Day,
		"Start": gutted.Start,
		"Title": gutted.Title,
		"Room":  gutted.Room,
		"Type":  gutted.Type,
	} {
		if got != course.NA {
			t.Errorf("gutted card %s = %q, want sentinel", field, got)
		}
	}
}
