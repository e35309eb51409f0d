package cmd

import (
	"fmt"
	"time"

	"edtbot/pkg/cas"
	"edtbot/pkg/config"
	"edtbot/pkg/timetable"
)

// loadTimetable runs the full pipeline for one date: CAS login, page
// retrieval, extraction.
func loadTimetable(settings *config.Settings, date time.Time) (*timetable.Timetable, error) {
	client := cas.NewClient()
	if err := client.Login(settings.Login, settings.Password); err != nil {
		return nil, fmt.Errorf("CAS login failed: %w", err)
	}

	resp, err := client.Get(settings.TimetableURL())
	if err != nil {
		return nil, fmt.Errorf("could not fetch the schedule page: %w", err)
	}
	defer resp.Body.Close()

	extractor := timetable.NewExtractor(settings.Groups, nil)
	return extractor.ExtractDay(resp.Body, date)
}

// parseDateFlag reads a --date value, defaulting to tomorrow in the
// configured timezone.
func parseDateFlag(settings *config.Settings, value string) (time.Time, error) {
	if value == "" {
		return time.Now().In(settings.Timezone).AddDate(0, 0, 1), nil
	}
	date, err := time.Parse("02/01/2006", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected dd/mm/yyyy", value)
	}
	return date, nil
}
