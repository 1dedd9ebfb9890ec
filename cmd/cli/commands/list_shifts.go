package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListShiftsCmd creates the listShifts command
func ListShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listShifts",
		Short: "List the shift types in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := app.Cfg.Rules()

			fmt.Printf("\nFound %d shift types:\n\n", len(app.Catalog.All()))
			for _, st := range app.Catalog.All() {
				var flags []string
				if st.ForcesNextDayOff {
					flags = append(flags, "next day off")
				}
				if !st.WeekendAvailable {
					flags = append(flags, "weekdays only")
				}
				if st.MonthlyLimit != nil {
					flags = append(flags, fmt.Sprintf("max %d/month", *st.MonthlyLimit))
				}
				if st.ConsecutiveRun != nil {
					flags = append(flags, fmt.Sprintf("runs of %d-%d", st.ConsecutiveRun.Min, st.ConsecutiveRun.Max))
				}
				if st.WeekendPairRequired {
					flags = append(flags, "Sat+Sun pair")
				}
				if st.WeekendBlockRequired {
					flags = append(flags, "Fri-Sun block")
				}
				if st.OnCall {
					flags = append(flags, "on call")
				}

				fmt.Printf("- %-22s %-22s %s-%s  %v\n", st.ID, st.Name, st.Start, st.End, flags)
			}

			fmt.Printf("\nMax weekends per month: %d\n", rules.MaxWeekendsPerMonth)
			fmt.Printf("Minimum rest hours:     %d\n\n", rules.MinRestHours)
			return nil
		},
	}
}
