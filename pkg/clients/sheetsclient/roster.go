package sheetsclient

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// PublishedRoster is one month of the roster laid out as a sheet tab
type PublishedRoster struct {
	Title  string // e.g. "March 2025"
	Header []string
	Rows   [][]string
}

// PublishRoster writes the roster to a tab named after its month.
// An existing tab of that name is cleared and rewritten; otherwise a new tab is created.
func (c *Client) PublishRoster(spreadsheetID string, roster *PublishedRoster) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(c.ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	if hasTab(spreadsheet, roster.Title) {
		_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, roster.Title, &sheets.ClearValuesRequest{}).
			Context(c.ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to clear tab %q: %w", roster.Title, err)
		}
	} else if _, err := c.CreateSheet(spreadsheetID, roster.Title); err != nil {
		return fmt.Errorf("failed to create tab: %w", err)
	}

	_, err = c.service.Spreadsheets.Values.Update(
		spreadsheetID,
		fmt.Sprintf("%s!A1", roster.Title),
		&sheets.ValueRange{Values: rosterValues(roster)},
	).ValueInputOption("RAW").Context(c.ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write roster to tab %q: %w", roster.Title, err)
	}

	return nil
}

func hasTab(spreadsheet *sheets.Spreadsheet, title string) bool {
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return true
		}
	}
	return false
}

func rosterValues(roster *PublishedRoster) [][]interface{} {
	values := make([][]interface{}, 0, len(roster.Rows)+1)
	values = append(values, toInterfaces(roster.Header))
	for _, row := range roster.Rows {
		values = append(values, toInterfaces(row))
	}
	return values
}

func toInterfaces(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
