package timetable

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// timePlacePattern matches the time cell of a slot, e.g. "08h00",
// "10h30 @ Amphi B" or "10h30 @ -" (a dash meaning no room).
var timePlacePattern = regexp.MustCompile(`^\s*(\d{2})h(\d{2})(?:\s@\s(.*?))?\s*$`)

// titleMarkers are the annotations appended to a raw slot title. The
// cleaned title is everything before the first one found.
var titleMarkers = []string{" (", " [", " LV1", " LV2", " EPS"}

// categoryRules map title markers to lesson categories, most specific
// marker first. The first rule whose marker appears in the raw title
// wins, so e.g. "EDT" beats the "TD" it contains.
var categoryRules = []struct {
	marker   string
	category Category
}{
	{"EDT", CategorySpecial},
	{"LV1", CategoryLanguage},
	{"LV2", CategoryLanguage},
	{"EPS", CategorySport},
	{"PR", CategoryProject},
	{"CM", CategoryLecture},
	{"TD", CategoryDirectedWork},
	{"TP", CategoryPracticalWork},
}

// parseCell turns one slot cell into a Lesson. The cell holds a nested
// table whose fields are, in order: title, time and room, teacher.
// Group membership is decided by the caller from the row the cell sits
// in, not by the cell itself.
func (e *Extractor) parseCell(cell *goquery.Selection, groups []string) (Lesson, error) {
	raw := strings.TrimSpace(cell.Text())

	fields := cell.Find("td")
	if fields.Length() < 3 {
		return Lesson{}, &CellError{Text: raw, Err: errors.New("expected title, time and teacher fields")}
	}

	start, place, err := parseTimePlace(fields.Eq(1).Text())
	if err != nil {
		return Lesson{}, &CellError{Text: raw, Err: err}
	}

	span, err := parseSpan(cell)
	if err != nil {
		return Lesson{}, &CellError{Text: raw, Err: err}
	}

	titleField := fields.Eq(0)
	rawTitle := titleField.Text()

	title, err := cleanTitle(rawTitle)
	if err != nil {
		return Lesson{}, &CellError{Text: raw, Err: err}
	}

	link, _ := titleField.Find("a.slot-external-link").Attr("href")

	caser := cases.Title(language.French)

	return Lesson{
		Start:    start,
		End:      e.resolver.End(span, start),
		Teacher:  caser.String(strings.TrimSpace(fields.Eq(2).Text())),
		Place:    place,
		Title:    title,
		Category: classify(rawTitle),
		Groups:   groups,
		Link:     strings.TrimSpace(link),
	}, nil
}

// parseTimePlace extracts the start time and optional room from the
// time field of a slot. A missing time is a hard error since every
// slot must state when it begins.
func parseTimePlace(text string) (Clock, string, error) {
	m := timePlacePattern.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, "", fmt.Errorf("no start time in %q", strings.TrimSpace(text))
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Clock{}, "", fmt.Errorf("invalid start time %sh%s", m[1], m[2])
	}

	place := m[3]
	if place == "-" {
		place = ""
	}
	return Clock{Hour: hour, Minute: minute}, place, nil
}

// parseSpan reads the colspan attribute a slot's duration is inferred
// from. A missing or unparsable attribute is a structural defect of the
// page, unlike an unknown span value which the resolver estimates.
func parseSpan(cell *goquery.Selection) (int, error) {
	attr, ok := cell.Attr("colspan")
	if !ok {
		return 0, errors.New("slot cell has no colspan")
	}
	span, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || span < 1 {
		return 0, fmt.Errorf("invalid colspan %q", attr)
	}
	return span, nil
}

// cleanTitle strips the trailing annotations from a raw slot title,
// e.g. "Anglais LV2 [TD]" becomes "Anglais". Titles without any marker
// are kept whole; a title that starts with an annotation has no usable
// text and is reported as malformed.
func cleanTitle(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty title")
	}
	if strings.HasPrefix(raw, "(") || strings.HasPrefix(raw, "[") {
		return "", fmt.Errorf("title %q starts with an annotation", raw)
	}

	cut := len(raw)
	for _, marker := range titleMarkers {
		if i := strings.Index(raw, marker); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(raw[:cut]), nil
}

// classify determines the lesson category from the raw (uncleaned)
// title, since the markers sit in the part cleanTitle removes.
func classify(rawTitle string) Category {
	for _, rule := range categoryRules {
		if strings.Contains(rawTitle, rule.marker) {
			return rule.category
		}
	}
	return CategoryNone
}
