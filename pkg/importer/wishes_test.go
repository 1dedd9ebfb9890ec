package importer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

var defaultColumns = Columns{StaffID: "staff_id", Date: "date", Shift: "shift"}

func TestWishesFromRows(t *testing.T) {
	rows := [][]string{
		{"Comment", " Shift ", "STAFF_ID", "Date"},
		{"", "HD", "s1", "2025-03-03"},
		{"late entry", "ICU_night", "s2", "04.03.2025"},
		{},
		{"", "", "", ""},
		{"", "OA", "s3"},
		{"", "HD", "s4", "next tuesday"},
	}

	wishes, rowErrs, err := WishesFromRows(rows, defaultColumns)
	require.NoError(t, err)

	assert.Equal(t, []model.Wish{
		{StaffID: "s1", Date: "2025-03-03", Shift: shifts.HD},
		{StaffID: "s2", Date: "2025-03-04", Shift: shifts.ICUNight},
	}, wishes)

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 6, rowErrs[0].Row)
	assert.Equal(t, 7, rowErrs[1].Row)
	assert.Contains(t, rowErrs[1].Error(), "unrecognised date")
}

func TestWishesFromRows_DateOrder(t *testing.T) {
	rows := [][]string{
		{"staff_id", "date", "shift"},
		{"s1", "03/04/2025", "HD"},
		{"s2", "2025-03-05", "HD"},
	}

	dayFirst, rowErrs, err := WishesFromRows(rows, defaultColumns)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, "2025-04-03", dayFirst[0].Date)
	assert.Equal(t, "2025-03-05", dayFirst[1].Date)

	cols := defaultColumns
	cols.DateOrder = MonthFirst
	monthFirst, rowErrs, err := WishesFromRows(rows, cols)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, "2025-03-04", monthFirst[0].Date)

	cols.DateOrder = "ymd"
	_, _, err = WishesFromRows(rows, cols)
	assert.Error(t, err)
}

func TestWishesFromRows_DayFirstRejectsMonthFirstOnly(t *testing.T) {
	rows := [][]string{
		{"staff_id", "date", "shift"},
		{"s1", "03/14/2025", "HD"},
	}

	wishes, rowErrs, err := WishesFromRows(rows, defaultColumns)
	require.NoError(t, err)
	assert.Empty(t, wishes)
	require.Len(t, rowErrs, 1)
	assert.Contains(t, rowErrs[0].Reason, "unrecognised date")
}

func TestWishesFromRows_CustomColumns(t *testing.T) {
	rows := [][]string{
		{"Mitarbeiter", "Tag", "Dienst"},
		{"s5", "2025-06-02", "HD"},
	}

	wishes, rowErrs, err := WishesFromRows(rows, Columns{StaffID: "Mitarbeiter", Date: "Tag", Shift: "Dienst"})
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, []model.Wish{{StaffID: "s5", Date: "2025-06-02", Shift: shifts.HD}}, wishes)
}

func TestWishesFromRows_MissingColumn(t *testing.T) {
	rows := [][]string{
		{"staff_id", "date"},
		{"s1", "2025-03-03"},
	}

	_, _, err := WishesFromRows(rows, defaultColumns)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestWishesFromRows_HeaderOnly(t *testing.T) {
	_, _, err := WishesFromRows([][]string{{"staff_id", "date", "shift"}}, defaultColumns)
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestReadRowsXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"staff_id", "date", "shift"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"s1", "2025-03-03", "HD"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"s2", "2025-03-08", "OA"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadRowsXLSX(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)

	wishes, rowErrs, err := WishesFromRows(rows, defaultColumns)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, []model.Wish{
		{StaffID: "s1", Date: "2025-03-03", Shift: shifts.HD},
		{StaffID: "s2", Date: "2025-03-08", Shift: shifts.OA},
	}, wishes)
}

func TestReadRowsXLSX_DateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"staff_id", "date", "shift"}))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "s1"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", "HD"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadRowsXLSX(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)

	for _, order := range []string{DayFirst, MonthFirst} {
		cols := defaultColumns
		cols.DateOrder = order
		wishes, rowErrs, err := WishesFromRows(rows, cols)
		require.NoError(t, err)
		assert.Empty(t, rowErrs)
		assert.Equal(t, []model.Wish{{StaffID: "s1", Date: "2025-03-04", Shift: shifts.HD}}, wishes, order)
	}
}

func TestReadRowsXLSX_UnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = ReadRowsXLSX(bytes.NewReader(buf.Bytes()), "Wishes")
	assert.Error(t, err)
}

func TestReadRowsXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadRowsXLSX(bytes.NewReader([]byte("staff_id,date,shift")), "")
	assert.Error(t, err)
}
