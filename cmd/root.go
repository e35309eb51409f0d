package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edtbot",
	Short: "INSA timetable extractor and Discord poster",
	Long: `edtbot logs into the INSA intranet, extracts the weekly class
schedule for a study year and either prints it, exports it to an .ics
file or posts it to a Discord channel every evening.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
