package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"edtbot/pkg/timetable"
)

// GenerateICS writes a day's lessons as an ICS calendar, one event per
// lesson, so the timetable can be imported into a mail client.
func GenerateICS(t *timetable.Timetable, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	year, month, day := t.Date.Date()

	for i, lesson := range t.Lessons {
		start := time.Date(year, month, day, lesson.Start.Hour, lesson.Start.Minute, 0, 0, loc)
		end := time.Date(year, month, day, lesson.End.Hour, lesson.End.Minute, 0, 0, loc)
		if !start.Before(end) {
			// The lesson rolled past midnight.
			end = end.AddDate(0, 0, 1)
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", start.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(lesson.Title)

		if lesson.Place != "" {
			event.SetLocation(lesson.Place)
		}
		if lesson.Link != "" {
			event.SetURL(lesson.Link)
		}

		var details []string
		if code := lesson.Category.Code(); code != "" {
			details = append(details, "Type: "+code)
		}
		if lesson.Teacher != "" {
			details = append(details, "Enseignant: "+lesson.Teacher)
		}
		details = append(details, "Groupes: "+strings.Join(lesson.Groups, ", "))
		event.SetDescription(strings.Join(details, "\n"))
	}

	return cal.SerializeTo(w)
}
