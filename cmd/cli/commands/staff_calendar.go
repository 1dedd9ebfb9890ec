package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/services"
	"github.com/jakechorley/ward-roster/pkg/export"
)

// StaffCalendarCmd creates the staffCalendar command
func StaffCalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffCalendar <staff_id> <year> [month]",
		Short: "Show a staff member's shifts and absences, optionally as an .ics file",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			staffID := args[0]
			period, err := parsePeriod(args[1:])
			if err != nil {
				return err
			}
			icsPath, _ := cmd.Flags().GetString("ics")

			app.Logger.Debug("staffCalendar command", zap.String("staff_id", staffID), zap.String("ics", icsPath))

			cal, err := services.ViewStaffCalendar(app.Ctx, app.Database, app.Catalog, app.Logger, staffID, period)
			if err != nil {
				return err
			}

			if icsPath != "" {
				content, err := export.CalendarICS(cal, app.Catalog, time.Local, time.Now())
				if err != nil {
					return err
				}
				if err := os.WriteFile(icsPath, []byte(content), 0644); err != nil {
					return fmt.Errorf("failed to write calendar file: %w", err)
				}
				fmt.Printf("✅ Calendar written to %s\n", icsPath)
				return nil
			}

			fmt.Printf("\n📅 Calendar for %s (%s)\n\n", staffID, periodLabel(period))
			if len(cal.Shifts) == 0 {
				fmt.Println("No shifts rostered.")
			}
			for _, entry := range cal.Shifts {
				for _, s := range entry.Shifts {
					fmt.Printf("%-10s  %-9s  %-22s %s-%s  %s\n", entry.Date, entry.Weekday, s.Shift, s.Start, s.End, s.Notes)
				}
			}

			if len(cal.Absences) > 0 {
				fmt.Printf("\nAbsences:\n")
				for _, a := range cal.Absences {
					fmt.Printf("  %s to %s  %s\n", a.StartDate, a.EndDate, a.Type)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().String("ics", "", "Write the calendar to this .ics file instead of printing it")

	return cmd
}
