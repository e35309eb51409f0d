package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"edtbot/pkg/config"
	"edtbot/pkg/exporter"
	"edtbot/pkg/timetable"
)

var (
	exportDateStr string
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a day's timetable to an ICS file",
	Long:  `Fetch one day of the schedule and write it as an .ics calendar, ready to import into a mail client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		date, err := parseDateFlag(settings, exportDateStr)
		if err != nil {
			return err
		}

		var day *timetable.Timetable
		var fetchErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting the timetable for %s to %s...", date.Format("02/01/2006"), exportOutput)).
			Action(func() {
				day, fetchErr = loadTimetable(settings, date)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch the timetable: %w", fetchErr)
		}

		file, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(day, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d lessons to %s\n", len(day.Lessons), exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportDateStr, "date", "d", "", "Date to export (format: dd/mm/yyyy), defaults to tomorrow")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "timetable.ics", "Output file path")
}
