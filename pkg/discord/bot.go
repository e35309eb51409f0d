package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"edtbot/pkg/config"
	"edtbot/pkg/timetable"
)

// FetchFunc retrieves the timetable for a date. The bot stays unaware
// of how the page is fetched and parsed.
type FetchFunc func(date time.Time) (*timetable.Timetable, error)

// Bot posts the next day's timetable to a Discord channel once per
// day, at the configured launch time.
type Bot struct {
	settings *config.Settings
	fetch    FetchFunc
	logger   *zap.Logger
	session  *discordgo.Session
	cron     *cron.Cron
}

// NewBot creates the bot. The settings must have passed ValidateBot.
func NewBot(settings *config.Settings, fetch FetchFunc, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + settings.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	return &Bot{
		settings: settings,
		fetch:    fetch,
		logger:   logger,
		session:  session,
	}, nil
}

// Start opens the Discord session and schedules the daily post.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord session: %w", err)
	}

	launch, err := time.Parse("15:04", b.settings.LaunchTime)
	if err != nil {
		return fmt.Errorf("invalid launch time %q: %w", b.settings.LaunchTime, err)
	}

	b.cron = cron.New(cron.WithLocation(b.settings.Timezone))
	spec := fmt.Sprintf("%d %d * * *", launch.Minute(), launch.Hour())
	if _, err := b.cron.AddFunc(spec, b.PostTomorrow); err != nil {
		return fmt.Errorf("scheduling the daily post: %w", err)
	}
	b.cron.Start()

	b.logger.Info("bot started",
		zap.String("launch_time", b.settings.LaunchTime),
		zap.String("timezone", b.settings.Timezone.String()),
		zap.Bool("skip_weekends", b.settings.SkipWeekends),
	)
	return nil
}

// Stop halts the scheduler and closes the Discord session.
func (b *Bot) Stop() {
	if b.cron != nil {
		b.cron.Stop()
	}
	if err := b.session.Close(); err != nil {
		b.logger.Warn("closing Discord session", zap.Error(err))
	}
	b.logger.Info("bot stopped")
}

// PostTomorrow extracts tomorrow's timetable and posts it to the
// configured channel. Failures are logged, never fatal: the next day's
// trigger fires regardless.
func (b *Bot) PostTomorrow() {
	date := time.Now().In(b.settings.Timezone).AddDate(0, 0, 1)
	logger := b.logger.With(zap.String("date", date.Format("02/01/2006")))

	t, err := b.fetch(date)
	if err != nil {
		var notFound *timetable.DateNotFoundError
		if errors.As(err, &notFound) {
			logger.Warn("date not in the published timetable")
			return
		}
		logger.Error("timetable extraction failed", zap.Error(err))
		return
	}

	if len(t.Lessons) == 0 && b.settings.SkipWeekends && isWeekend(date) {
		logger.Info("weekend day skipped")
		return
	}

	if _, err := b.session.ChannelMessageSendEmbed(b.settings.ChannelID, BuildEmbed(t)); err != nil {
		logger.Error("failed to post the timetable", zap.Error(err))
		return
	}
	logger.Info("timetable posted", zap.Int("lessons", len(t.Lessons)))
}

func isWeekend(date time.Time) bool {
	return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
}
