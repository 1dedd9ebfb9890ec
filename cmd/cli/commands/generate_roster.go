package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/roster"
	"github.com/jakechorley/ward-roster/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster <year> <month>",
		Short: "Generate and save the roster for a month",
		Long: `Generate the roster for a month from the stored staff, absences and wishes.
A roster already stored for the month is replaced.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args[0], args[1])
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("generateRoster command",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Bool("dry_run", dryRun))

			result, err := services.GenerateRoster(app.Ctx, app.Database, app.Catalog, app.Cfg, app.Logger, year, month, dryRun)
			if err != nil {
				return err
			}

			printRoster(app, result)

			if dryRun {
				fmt.Println("Dry run: roster was not saved.")
			} else {
				fmt.Printf("✅ Roster %s saved (run %s)\n", result.Roster.Key(), result.Roster.RunID)
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Generate without saving to the store")

	return cmd
}

func printRoster(app *AppContext, result *roster.Result) {
	ids := app.Catalog.IDs()

	fmt.Printf("\n📅 Roster %s\n\n", result.Roster.Key())
	fmt.Printf("%-10s  %-9s", "Date", "Weekday")
	for _, id := range ids {
		fmt.Printf("  %-10.10s", id)
	}
	fmt.Println()

	for _, day := range result.Roster.Days {
		fmt.Printf("%-10s  %-9s", day.Date, day.Weekday)
		for _, id := range ids {
			cell := "-"
			if a := day.Shifts[id]; a.IsAssigned() {
				cell = a.StaffID
			}
			fmt.Printf("  %-10.10s", cell)
		}
		fmt.Println()
	}
	fmt.Println()

	fmt.Printf("Unfilled slots: %d\n", len(result.Unfilled))
	if len(result.Warnings) > 0 {
		fmt.Printf("⚠️  Skipped input records: %d\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w.Error())
		}
	}
	if len(result.Violations) > 0 {
		fmt.Printf("⚠️  Rule violations: %d\n", len(result.Violations))
		for _, v := range result.Violations {
			fmt.Printf("  - %s %s %s: %s\n", v.Date, v.StaffID, v.Shift, v.Description)
		}
	}
	fmt.Println()
}

func parseYearMonth(yearArg, monthArg string) (int, int, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil {
		return 0, 0, fmt.Errorf("year must be a number: %w", err)
	}
	month, err := strconv.Atoi(monthArg)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be a number: %w", err)
	}
	if _, _, err := model.ParseRosterKey(model.RosterKey(year, month)); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
