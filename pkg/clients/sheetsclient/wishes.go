package sheetsclient

import (
	"fmt"
	"strings"
)

// ReadTab returns every row of a tab as trimmed strings, header row included
func (c *Client) ReadTab(spreadsheetID, tab string) ([][]string, error) {
	values, err := c.GetValues(spreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read tab %q: %w", tab, err)
	}

	return stringRows(values), nil
}

func stringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell != nil {
				cells[i] = strings.TrimSpace(fmt.Sprint(cell))
			}
		}
		rows = append(rows, cells)
	}
	return rows
}
