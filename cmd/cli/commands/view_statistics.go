package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/services"
	"github.com/jakechorley/ward-roster/pkg/core/statistics"
)

// ViewStatisticsCmd creates the viewStatistics command
func ViewStatisticsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewStatistics <year> [month]",
		Short: "Show per-staff statistics and forecast for a year or month",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := parsePeriod(args)
			if err != nil {
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")

			app.Logger.Debug("viewStatistics command", zap.Int("year", period.Year), zap.Int("month", period.Month))

			result, err := services.ViewStatistics(app.Ctx, app.Database, app.Catalog, app.Logger, period)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"statistics": result.Statistics,
					"forecast":   result.Forecast,
				})
			}

			stats := result.Statistics
			fmt.Printf("\n📊 Statistics for %s (%d rosters)\n\n", periodLabel(period), len(stats.Rosters))
			fmt.Printf("%-20s  %6s  %8s  %9s  %6s  %4s  %8s  %6s\n",
				"Staff", "Shifts", "Required", "Remaining", "Wknds", "Sick", "Vacation", "Wishes")
			fmt.Println("--------------------  ------  --------  ---------  ------  ----  --------  ------")
			for _, id := range stats.StaffOrder {
				s := stats.Staff[id]
				fmt.Printf("%-20.20s  %6d  %8d  %9d  %6d  %4d  %8d  %6d\n",
					s.Name, s.TotalShifts, s.RequiredShifts, s.RemainingShifts,
					s.WeekendsWorked, s.SickDays, s.VacationDays, s.WishesGranted)
			}

			fmt.Printf("\nShift totals:\n")
			for _, id := range app.Catalog.IDs() {
				fmt.Printf("  %-22s %d\n", id, stats.ShiftTotals[id])
			}
			fmt.Printf("\nUnfilled slots: %d\n", stats.Unfilled)

			fmt.Printf("\n🔮 Forecast (remaining shifts per capability):\n")
			for _, id := range stats.StaffOrder {
				f, ok := result.Forecast[id]
				if !ok || f.RemainingShifts == 0 {
					continue
				}
				fmt.Printf("  %s: %d remaining\n", f.Name, f.RemainingShifts)
				for _, shiftID := range app.Catalog.IDs() {
					if n, ok := f.RecommendedShifts[shiftID]; ok {
						fmt.Printf("    %-22s %d\n", shiftID, n)
					}
				}
			}
			fmt.Println()

			for _, w := range stats.Warnings {
				fmt.Printf("⚠️  %s\n", w)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the statistics as JSON")

	return cmd
}

func parsePeriod(args []string) (statistics.Period, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return statistics.Period{}, fmt.Errorf("year must be a number: %w", err)
	}
	period := statistics.Period{Year: year}

	if len(args) > 1 {
		month, err := strconv.Atoi(args[1])
		if err != nil || month < 1 || month > 12 {
			return statistics.Period{}, fmt.Errorf("month must be a number from 1 to 12, got %q", args[1])
		}
		period.Month = month
	}
	return period, nil
}

func periodLabel(p statistics.Period) string {
	if p.Month == 0 {
		return strconv.Itoa(p.Year)
	}
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}
