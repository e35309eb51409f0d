package timetable

import (
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var datePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// dayRows returns the schedule rows carrying the given date's lessons,
// one row per group, in document order.
//
// The table repeats blocks of one row per group. Only the first row of
// a block (class "row-group-1") names the date in its header cell,
// alongside the weekday; the rows that follow inherit it until the next
// block starts. Rows appearing before any block marker carry no usable
// date and are ignored.
func dayRows(doc *goquery.Document, date time.Time) ([]*goquery.Selection, error) {
	want := date.Format("02/01/2006")

	var current string
	var rows []*goquery.Selection

	doc.Find("tr.hour").Each(func(_ int, row *goquery.Selection) {
		if row.HasClass("row-group-1") {
			current = datePattern.FindString(row.Find("th").Text())
		}
		if current != "" && current == want {
			rows = append(rows, row)
		}
	})

	if len(rows) == 0 {
		return nil, &DateNotFoundError{Date: date}
	}
	return rows, nil
}
