package timetable

import (
	"fmt"
	"time"
)

// Category classifies a lesson by the marker found in its raw title.
type Category int

const (
	// CategoryNone means the title carried no recognized marker.
	CategoryNone Category = iota
	CategoryLecture
	CategoryDirectedWork
	CategoryPracticalWork
	CategorySpecial
	CategoryLanguage
	CategorySport
	CategoryProject
)

// Code returns the short marker used on the timetable page for this
// category ("CM", "TD", ...), or an empty string for CategoryNone.
func (c Category) Code() string {
	switch c {
	case CategoryLecture:
		return "CM"
	case CategoryDirectedWork:
		return "TD"
	case CategoryPracticalWork:
		return "TP"
	case CategorySpecial:
		return "EDT"
	case CategoryLanguage:
		return "LV"
	case CategorySport:
		return "EPS"
	case CategoryProject:
		return "PR"
	}
	return ""
}

// Clock is a wall-clock time of day, independent of any date.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the clock as minutes elapsed since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Add returns the clock shifted by the given number of minutes,
// rolling over past midnight in either direction.
func (c Clock) Add(minutes int) Clock {
	const day = 24 * 60
	total := ((c.Minutes()+minutes)%day + day) % day
	return Clock{Hour: total / 60, Minute: total % 60}
}

// Before reports whether c is earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// String renders the clock in the timetable's own notation, e.g. "08h00".
func (c Clock) String() string {
	return fmt.Sprintf("%02dh%02d", c.Hour, c.Minute)
}

// Lesson is one slot of the day's timetable.
type Lesson struct {
	Start    Clock
	End      Clock
	Teacher  string // title-cased, empty when the cell names no teacher
	Place    string // empty when the cell shows no room
	Title    string
	Category Category
	Groups   []string // never empty; the full group set for shared lessons
	Link     string   // external link attached to the slot, if any
}

// Timetable holds the lessons of a single day, in the order they appear
// on the schedule page: shared lessons first, then per-group lessons.
type Timetable struct {
	Date    time.Time
	Groups  []string // group identifiers valid for the study year
	Lessons []Lesson // empty on a day without classes
}

// SharedOnly reports whether every lesson of the day applies to all
// groups. A day without lessons counts as shared.
func (t *Timetable) SharedOnly() bool {
	for _, l := range t.Lessons {
		if len(l.Groups) != len(t.Groups) {
			return false
		}
	}
	return true
}

var groupsByYear = map[int][]string{
	3: {"1", "2", "3", "4"},
	4: {"1", "2", "3", "4"},
	5: {"1", "2", "3"},
}

// GroupsForYear returns the group identifiers a study year is split
// into. The second return value is false for years without a published
// timetable.
func GroupsForYear(year int) ([]string, bool) {
	groups, ok := groupsByYear[year]
	if !ok {
		return nil, false
	}
	return append([]string(nil), groups...), true
}
