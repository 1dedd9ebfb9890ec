package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

var (
	ErrNoRows        = errors.New("sheet has no data rows (first row is the header)")
	ErrMissingColumn = errors.New("header is missing a mapped column")
)

// Date orders for non-ISO dates typed into a wish sheet
const (
	DayFirst   = "dmy"
	MonthFirst = "mdy"
)

// Columns maps the wish fields to header names in the source sheet.
// DateOrder selects how "03/04/2025" is read; empty means DayFirst.
type Columns struct {
	StaffID   string
	Date      string
	Shift     string
	DateOrder string
}

// RowError describes a sheet row that could not be turned into a wish.
// Row is the 1-based row number as shown in the spreadsheet.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// dateLayouts are the date renderings accepted in wish sheets per date order.
// ISO dates are accepted in both.
var dateLayouts = map[string][]string{
	DayFirst: {
		model.DateLayout,
		"02.01.2006",
		"2.1.2006",
		"02.01.06",
		"02/01/2006",
		"2/1/2006",
	},
	MonthFirst: {
		model.DateLayout,
		"01/02/2006",
		"1/2/2006",
		"1/2/06",
		"01-02-06",
	},
}

// maxExcelSerial is 9999-12-31, the last date a spreadsheet can hold
const maxExcelSerial = 2958465

// WishesFromRows maps header-first rows to wishes. Blank rows are skipped;
// incomplete or undated rows are reported as RowErrors and left out.
func WishesFromRows(rows [][]string, cols Columns) ([]model.Wish, []RowError, error) {
	if len(rows) < 2 {
		return nil, nil, ErrNoRows
	}

	order := cols.DateOrder
	if order == "" {
		order = DayFirst
	}
	layouts, ok := dateLayouts[order]
	if !ok {
		return nil, nil, fmt.Errorf("unknown date order %q (want %s or %s)", cols.DateOrder, DayFirst, MonthFirst)
	}

	staffCol, err := columnIndex(rows[0], cols.StaffID)
	if err != nil {
		return nil, nil, err
	}
	dateCol, err := columnIndex(rows[0], cols.Date)
	if err != nil {
		return nil, nil, err
	}
	shiftCol, err := columnIndex(rows[0], cols.Shift)
	if err != nil {
		return nil, nil, err
	}

	var wishes []model.Wish
	var rowErrs []RowError
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		staffID, rawDate, shift := cellAt(row, staffCol), cellAt(row, dateCol), cellAt(row, shiftCol)

		if staffID == "" && rawDate == "" && shift == "" {
			continue
		}
		if staffID == "" || rawDate == "" || shift == "" {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Reason: "staff id, date and shift are all required"})
			continue
		}

		date, err := parseDate(rawDate, layouts)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Reason: err.Error()})
			continue
		}

		wishes = append(wishes, model.Wish{StaffID: staffID, Date: date, Shift: shifts.ID(shift)})
	}

	return wishes, rowErrs, nil
}

// ReadRowsXLSX returns the rows of a workbook sheet. An empty sheet name selects the first sheet.
// Date cells come back as spreadsheet serial numbers, which WishesFromRows accepts.
func ReadRowsXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	// Raw values keep date cells as serial numbers instead of the month-first display format
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// columnIndex finds a header cell, ignoring case and surrounding space
func columnIndex(header []string, name string) (int, error) {
	want := normalise(name)
	for i, cell := range header {
		if normalise(cell) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}

func parseDate(s string, layouts []string) (string, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(model.DateLayout), nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 1 && serial <= maxExcelSerial {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t.Format(model.DateLayout), nil
		}
	}

	return "", fmt.Errorf("unrecognised date %q", s)
}
