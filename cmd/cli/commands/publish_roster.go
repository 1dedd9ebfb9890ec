package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/services"
)

// PublishRosterCmd creates the publishRoster command
func PublishRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishRoster <YYYY-MM>",
		Short: "Publish a stored roster to the roster Google Sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("publishRoster command", zap.String("key", args[0]))

			client, err := app.SheetsClient()
			if err != nil {
				return err
			}

			published, err := services.PublishRoster(app.Ctx, app.Database, client, app.Catalog, app.Cfg, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Roster Published Successfully\n\n")
			fmt.Printf("Tab:      %s\n", published.Title)
			fmt.Printf("Days:     %d\n", len(published.Rows))
			fmt.Printf("Sheet ID: %s\n\n", app.Cfg.RosterSheetID)
			return nil
		},
	}
}

// ExportRosterCmd creates the exportRoster command
func ExportRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportRoster <YYYY-MM>",
		Short: "Export a stored roster as an .xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = fmt.Sprintf("roster_%s.xlsx", args[0])
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}

			if err := services.ExportRoster(app.Ctx, app.Database, app.Catalog, app.Logger, args[0], f); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close output file: %w", err)
			}

			fmt.Printf("✅ Roster written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "Output path (default roster_<YYYY-MM>.xlsx)")

	return cmd
}
