package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"edtbot/pkg/timetable"
)

// Settings holds everything edtbot reads from the environment. All
// validation happens in Load, before any extraction runs.
type Settings struct {
	Login    string
	Password string
	Year     int
	Groups   []string // resolved from Year

	DiscordToken string
	ChannelID    string
	LaunchTime   string // "HH:MM", local to Timezone
	SkipWeekends bool
	Timezone     *time.Location
}

// Load reads the settings from a .env file (if present) and the
// process environment. Credentials and a valid study year are always
// required; the Discord side is checked separately by ValidateBot so
// the CLI commands work without a bot token.
func Load() (*Settings, error) {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	s := &Settings{
		Login:        os.Getenv("LOGIN"),
		Password:     os.Getenv("PASSWORD"),
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		ChannelID:    os.Getenv("DISCORD_CHANNEL_ID"),
		LaunchTime:   os.Getenv("LAUNCH_TIME"),
	}

	if s.Login == "" {
		return nil, fmt.Errorf("LOGIN is not set")
	}
	if s.Password == "" {
		return nil, fmt.Errorf("PASSWORD is not set")
	}

	year, err := strconv.Atoi(os.Getenv("YEAR"))
	if err != nil {
		return nil, fmt.Errorf("YEAR must be a number, got %q", os.Getenv("YEAR"))
	}
	groups, ok := timetable.GroupsForYear(year)
	if !ok {
		return nil, fmt.Errorf("no timetable is published for year %d", year)
	}
	s.Year = year
	s.Groups = groups

	if v := os.Getenv("SKIP_WEEKENDS"); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SKIP_WEEKENDS must be a boolean, got %q", v)
		}
		s.SkipWeekends = skip
	}

	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = "Europe/Paris"
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("unknown TIMEZONE %q: %w", tzName, err)
	}
	s.Timezone = tz

	return s, nil
}

// ValidateBot checks the settings the bot daemon needs on top of the
// scraping ones.
func (s *Settings) ValidateBot() error {
	if s.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is not set")
	}
	if s.ChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is not set")
	}
	if _, err := strconv.ParseUint(s.ChannelID, 10, 64); err != nil {
		return fmt.Errorf("DISCORD_CHANNEL_ID must be a numeric channel id, got %q", s.ChannelID)
	}
	if _, err := time.Parse("15:04", s.LaunchTime); err != nil {
		return fmt.Errorf("LAUNCH_TIME must be HH:MM, got %q", s.LaunchTime)
	}
	return nil
}

// TimetableURL returns the address of the study year's schedule page.
func (s *Settings) TimetableURL() string {
	return fmt.Sprintf("https://servif-cocktail.insa-lyon.fr/EdT/%dIF.php", s.Year)
}
