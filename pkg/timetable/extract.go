package timetable

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Slot cells are tagged by lesson kind. Lectures, special events and
// project slots sit on the block's first row and apply to every group;
// directed-work and practical-work slots sit on the row of the group
// they belong to.
const (
	sharedSlots   = "td.Slot-CM, td.Slot-EDT, td.Slot-PR"
	perGroupSlots = "td.Slot-TD, td.Slot-TP"
)

// Extractor parses day timetables out of a study year's schedule page.
// The group set and the span table are fixed at construction so the
// extraction never reads ambient state.
type Extractor struct {
	groups   []string
	resolver DurationResolver
}

// NewExtractor returns an extractor for the given group set. A nil
// durations map selects DefaultSpanDurations.
func NewExtractor(groups []string, durations map[int]int) *Extractor {
	if durations == nil {
		durations = DefaultSpanDurations
	}
	return &Extractor{
		groups:   append([]string(nil), groups...),
		resolver: DurationResolver{Table: durations},
	}
}

// ExtractDay reads the full schedule page and returns the timetable for
// the given date. A *DateNotFoundError means the date is not published;
// a *CellError means the page holds a slot the parser cannot read, in
// which case no partial timetable is returned.
func (e *Extractor) ExtractDay(r io.Reader, date time.Time) (*Timetable, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading schedule page: %w", err)
	}

	rows, err := dayRows(doc, date)
	if err != nil {
		return nil, err
	}

	lessons, err := e.assemble(rows)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", date.Format("02/01/2006"), err)
	}

	return &Timetable{
		Date:    date,
		Groups:  append([]string(nil), e.groups...),
		Lessons: lessons,
	}, nil
}

// assemble walks a date's rows and parses every slot cell into a
// Lesson. Shared slots come first, from the block's first row with the
// full group set; then per-group slots row by row, each with the group
// matching the row's position in the block. Any unreadable cell aborts
// the whole day.
func (e *Extractor) assemble(rows []*goquery.Selection) ([]Lesson, error) {
	var lessons []Lesson
	var firstErr error

	add := func(cell *goquery.Selection, groups []string) {
		if firstErr != nil {
			return
		}
		lesson, err := e.parseCell(cell, groups)
		if err != nil {
			firstErr = err
			return
		}
		lessons = append(lessons, lesson)
	}

	rows[0].Find(sharedSlots).Each(func(_ int, cell *goquery.Selection) {
		add(cell, e.groups)
	})

	for i, row := range rows {
		group := []string{strconv.Itoa(i + 1)}
		row.Find(perGroupSlots).Each(func(_ int, cell *goquery.Selection) {
			add(cell, group)
		})
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return lessons, nil
}
