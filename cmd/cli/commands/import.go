package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-roster/pkg/core/services"
	"github.com/jakechorley/ward-roster/pkg/importer"
)

// ImportStaffCmd creates the importStaff command
func ImportStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importStaff <file>",
		Short: "Replace the staff list from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open staff file: %w", err)
			}
			defer f.Close()

			count, err := services.ImportStaff(app.Ctx, app.Database, app.Catalog, app.Logger, f)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Imported %d staff members\n", count)
			return nil
		},
	}
}

// ImportAbsencesCmd creates the importAbsences command
func ImportAbsencesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importAbsences <file>",
		Short: "Replace the absence records from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open absence file: %w", err)
			}
			defer f.Close()

			count, err := services.ImportAbsences(app.Ctx, app.Database, app.Logger, f)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Imported %d absences\n", count)
			return nil
		},
	}
}

// ImportWishesCmd creates the importWishes command
func ImportWishesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importWishes",
		Short: "Replace the wishes from an .xlsx file or the configured wish sheet",
		Long: `Replace the stored wishes. With --file the rows are read from an .xlsx workbook,
otherwise from the Google Sheets tab set by wishSheetID and wishSheetTab.
Column headers are matched using wishColumns from the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			sheet, _ := cmd.Flags().GetString("sheet")

			app.Logger.Debug("importWishes command", zap.String("file", path), zap.String("sheet", sheet))

			rows, err := wishRows(app, path, sheet)
			if err != nil {
				return err
			}

			result, err := services.ImportWishes(app.Ctx, app.Database, app.Catalog, app.Cfg, app.Logger, rows)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Imported %d wishes\n", result.Imported)
			if result.UnknownStaff > 0 {
				fmt.Printf("⚠️  %d wishes name staff ids not in the staff list\n", result.UnknownStaff)
			}
			for _, rowErr := range result.Skipped {
				fmt.Printf("  skipped %s\n", rowErr.Error())
			}
			return nil
		},
	}

	cmd.Flags().String("file", "", "Path to an .xlsx workbook")
	cmd.Flags().String("sheet", "", "Workbook sheet name (defaults to the first sheet)")

	return cmd
}

func wishRows(app *AppContext, path, sheet string) ([][]string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open wish workbook: %w", err)
		}
		defer f.Close()
		return importer.ReadRowsXLSX(f, sheet)
	}

	if app.Cfg.WishSheetID == "" {
		return nil, fmt.Errorf("no --file given and wishSheetID is not configured")
	}

	client, err := app.SheetsClient()
	if err != nil {
		return nil, err
	}
	return client.ReadTab(app.Cfg.WishSheetID, app.Cfg.WishSheetTab)
}
