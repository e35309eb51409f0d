package timetable

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// schedulePage is a reduced version of the real schedule table: blocks
// of four rows (one per group), the date only on the first row of each
// block, slot cells holding a nested table with title, time and teacher
// fields.
const schedulePage = `<html><body><table>
<tr class="hour row-group-1">
  <th rowspan="4">Lundi<br>20/09/2021</th>
  <td class="Slot-CM" colspan="7"><table><tr>
    <td>Physique quantique (CM)</td>
    <td>08h00 @ Amphi Seguin </td>
    <td>marie curie</td>
  </tr></table></td>
  <td class="Slot-TD" colspan="6"><table><tr>
    <td>Anglais LV2 [TD]</td>
    <td>10h00 @ - </td>
    <td>john smith</td>
  </tr></table></td>
</tr>
<tr class="hour row-group-2">
  <td class="Slot-TP" colspan="9"><table><tr>
    <td><a class="slot-external-link" href="https://moodle.example.org/tp">Informatique [TP]</a></td>
    <td>14h00 @ Salle 501 </td>
    <td>alan turing</td>
  </tr></table></td>
</tr>
<tr class="hour row-group-3"></tr>
<tr class="hour row-group-4"></tr>
<tr class="hour row-group-1">
  <th rowspan="4">Mardi<br>21/09/2021</th>
</tr>
<tr class="hour row-group-2"></tr>
<tr class="hour row-group-3"></tr>
<tr class="hour row-group-4"></tr>
</table></body></html>`

var fullGroups = []string{"1", "2", "3", "4"}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("02/01/2006", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

func TestExtractDay(t *testing.T) {
	e := NewExtractor(fullGroups, nil)

	tt, err := e.ExtractDay(strings.NewReader(schedulePage), date(t, "20/09/2021"))
	if err != nil {
		t.Fatalf("ExtractDay failed: %v", err)
	}

	if len(tt.Lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(tt.Lessons))
	}

	// Shared lessons come first, then per-group lessons in row order.
	cm := tt.Lessons[0]
	if cm.Title != "Physique quantique" || cm.Category != CategoryLecture {
		t.Errorf("expected the lecture first, got %q (%v)", cm.Title, cm.Category)
	}
	if len(cm.Groups) != len(fullGroups) {
		t.Errorf("a lecture must apply to every group, got %v", cm.Groups)
	}
	if cm.Place != "Amphi Seguin" {
		t.Errorf("expected place \"Amphi Seguin\", got %q", cm.Place)
	}
	if cm.Teacher != "Marie Curie" {
		t.Errorf("expected teacher \"Marie Curie\", got %q", cm.Teacher)
	}
	// Span 7 maps to 90 minutes.
	if cm.Start != (Clock{Hour: 8, Minute: 0}) || cm.End != (Clock{Hour: 9, Minute: 30}) {
		t.Errorf("expected 08h00 - 09h30, got %s - %s", cm.Start, cm.End)
	}

	td := tt.Lessons[1]
	if td.Title != "Anglais" || td.Category != CategoryLanguage {
		t.Errorf("expected the language lesson second, got %q (%v)", td.Title, td.Category)
	}
	if len(td.Groups) != 1 || td.Groups[0] != "1" {
		t.Errorf("expected the first row's slot to belong to group 1, got %v", td.Groups)
	}

	tp := tt.Lessons[2]
	if tp.Title != "Informatique" || tp.Category != CategoryPracticalWork {
		t.Errorf("expected the practical third, got %q (%v)", tp.Title, tp.Category)
	}
	if len(tp.Groups) != 1 || tp.Groups[0] != "2" {
		t.Errorf("expected the second row's slot to belong to group 2, got %v", tp.Groups)
	}
	if tp.Link != "https://moodle.example.org/tp" {
		t.Errorf("expected the external link, got %q", tp.Link)
	}
	// Span 9 maps to 120 minutes.
	if tp.End != (Clock{Hour: 16, Minute: 0}) {
		t.Errorf("expected end 16h00, got %s", tp.End)
	}

	if tt.SharedOnly() {
		t.Errorf("a day with per-group lessons must not report shared-only")
	}
}

func TestExtractDayWithoutLessons(t *testing.T) {
	e := NewExtractor(fullGroups, nil)

	tt, err := e.ExtractDay(strings.NewReader(schedulePage), date(t, "21/09/2021"))
	if err != nil {
		t.Fatalf("ExtractDay failed on an empty day: %v", err)
	}

	if len(tt.Lessons) != 0 {
		t.Fatalf("expected no lessons on 21/09, got %d", len(tt.Lessons))
	}
	if !tt.SharedOnly() {
		t.Errorf("an empty day must vacuously report shared-only")
	}
}

func TestExtractDayDateNotFound(t *testing.T) {
	e := NewExtractor(fullGroups, nil)

	_, err := e.ExtractDay(strings.NewReader(schedulePage), date(t, "22/09/2021"))
	if err == nil {
		t.Fatalf("expected an error for an absent date")
	}

	var notFound *DateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected a *DateNotFoundError, got %T: %v", err, err)
	}
	if notFound.Date.Format("02/01/2006") != "22/09/2021" {
		t.Errorf("expected the error to carry the requested date, got %s", notFound.Date)
	}
}

func TestExtractDayMalformedCellFailsWholeDay(t *testing.T) {
	const page = `<html><body><table>
<tr class="hour row-group-1">
  <th rowspan="2">Jeudi<br>23/09/2021</th>
  <td class="Slot-CM" colspan="7"><table><tr>
    <td>Physique (CM)</td>
    <td>08h00 @ Amphi A </td>
    <td>marie curie</td>
  </tr></table></td>
  <td class="Slot-TD" colspan="6"><table><tr>
    <td>Maths [TD]</td>
    <td>no time here</td>
    <td>someone</td>
  </tr></table></td>
</tr>
<tr class="hour row-group-2"></tr>
</table></body></html>`

	e := NewExtractor([]string{"1", "2"}, nil)

	_, err := e.ExtractDay(strings.NewReader(page), date(t, "23/09/2021"))
	if err == nil {
		t.Fatalf("expected the malformed cell to fail the whole day")
	}

	var cellErr *CellError
	if !errors.As(err, &cellErr) {
		t.Fatalf("expected a *CellError, got %T: %v", err, err)
	}
	if !strings.Contains(cellErr.Text, "Maths") {
		t.Errorf("expected the raw cell text in the error, got %q", cellErr.Text)
	}
}

func TestDayRowsGroupsBlockRows(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(schedulePage))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}

	// Both dates sit in blocks of four rows. The date only appears on
	// the first row of a block and must be inherited by the three that
	// follow.
	for _, day := range []string{"20/09/2021", "21/09/2021"} {
		rows, err := dayRows(doc, date(t, day))
		if err != nil {
			t.Fatalf("dayRows(%s) failed: %v", day, err)
		}
		if len(rows) != 4 {
			t.Errorf("expected one row per group (4) for %s, got %d", day, len(rows))
		}
		if len(rows) > 0 && !rows[0].HasClass("row-group-1") {
			t.Errorf("expected the block's first row first in document order for %s", day)
		}
	}
}
