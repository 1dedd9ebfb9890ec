package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

// WriteRosterXLSX writes the roster as a single-sheet workbook titled after its month.
// Unfilled slots are shaded so gaps stand out when printed.
func WriteRosterXLSX(w io.Writer, roster *model.Roster, catalog *shifts.Catalog, names map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := MonthTitle(roster.Year, roster.Month)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header, rows := RosterGrid(roster, catalog, names)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	gapStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F8CBAD"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create gap style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 11)
	if len(header) > 2 {
		f.SetColWidth(sheet, "C", lastCol, 18)
	}

	for i, row := range rows {
		rowNum := i + 2
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(sheet, start, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}

		day := roster.Days[i]
		for col, st := range catalog.All() {
			a, ok := day.Shifts[st.ID]
			if !ok || a.IsAssigned() || (!st.WeekendAvailable && day.IsWeekend()) {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+3, rowNum)
			f.SetCellStyle(sheet, cell, cell, gapStyle)
			if a.Notes != "" {
				f.AddComment(sheet, excelize.Comment{Cell: cell, Author: "ward-roster", Text: a.Notes})
			}
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      1,
		TopLeftCell: "C2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
