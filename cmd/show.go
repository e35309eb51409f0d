package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"edtbot/pkg/config"
	"edtbot/pkg/timetable"
)

var showDateStr string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a day's timetable in the terminal",
	Long:  `Fetch the schedule page and print the lessons of one day, tomorrow by default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		date, err := parseDateFlag(settings, showDateStr)
		if err != nil {
			return err
		}

		var day *timetable.Timetable
		var fetchErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Fetching the timetable for %s...", date.Format("02/01/2006"))).
			Action(func() {
				day, fetchErr = loadTimetable(settings, date)
			}).
			Run()

		if fetchErr != nil {
			var notFound *timetable.DateNotFoundError
			if errors.As(fetchErr, &notFound) {
				fmt.Printf("No timetable is published for %s.\n", date.Format("02/01/2006"))
				return nil
			}
			return fetchErr
		}

		printTimetable(day)
		return nil
	},
}

func printTimetable(day *timetable.Timetable) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("Timetable for %s", day.Date.Format("02/01/2006"))))

	if len(day.Lessons) == 0 {
		fmt.Println("No classes, rest day.")
		return
	}

	for _, lesson := range day.Lessons {
		title := lesson.Title
		if code := lesson.Category.Code(); code != "" {
			title += " [" + code + "]"
		}
		fmt.Printf("• %s  %s\n", timeStyle.Render(fmt.Sprintf("%s - %s", lesson.Start, lesson.End)), title)

		var details []string
		if len(lesson.Groups) == len(day.Groups) {
			details = append(details, "all groups")
		} else {
			details = append(details, "group "+strings.Join(lesson.Groups, ", "))
		}
		if lesson.Teacher != "" {
			details = append(details, lesson.Teacher)
		}
		if lesson.Place != "" {
			details = append(details, lesson.Place)
		}
		if lesson.Link != "" {
			details = append(details, lesson.Link)
		}
		fmt.Printf("  %s\n", detailStyle.Render(strings.Join(details, " | ")))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showDateStr, "date", "d", "", "Date to fetch (format: dd/mm/yyyy), defaults to tomorrow")
}
