package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"edtbot/pkg/config"
	"edtbot/pkg/discord"
	"edtbot/pkg/timetable"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Discord bot",
	Long: `Start the daemon that posts the next day's timetable to the
configured Discord channel every day at LAUNCH_TIME.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		if err := settings.ValidateBot(); err != nil {
			return err
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logger.Sync()

		fetch := func(date time.Time) (*timetable.Timetable, error) {
			return loadTimetable(settings, date)
		}

		bot, err := discord.NewBot(settings, fetch, logger)
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
		defer bot.Stop()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		return nil
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
