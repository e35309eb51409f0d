package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"edtbot/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long:  "Load the .env settings, validate them and print the result. The password is never shown.",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Login:          %s\n", settings.Login)
		fmt.Printf("Study year:     %d (groups %s)\n", settings.Year, strings.Join(settings.Groups, ", "))
		fmt.Printf("Schedule page:  %s\n", settings.TimetableURL())
		fmt.Printf("Timezone:       %s\n", settings.Timezone)
		fmt.Printf("Skip weekends:  %t\n", settings.SkipWeekends)

		if err := settings.ValidateBot(); err != nil {
			fmt.Printf("Bot:            not configured (%v)\n", err)
			return nil
		}
		fmt.Printf("Channel:        %s\n", settings.ChannelID)
		fmt.Printf("Launch time:    %s\n", settings.LaunchTime)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
