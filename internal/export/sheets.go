package export

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetResult reports where a pushed report landed.
type SheetResult struct {
	SpreadsheetID string
	URL           string
}

// PushToSheet writes rows into the first sheet of a Google
// spreadsheet, replacing whatever was there. When spreadsheetID is
// empty a new spreadsheet is created with the given title. The
// credentials file must name a service account with Sheets access.
func PushToSheet(ctx context.Context, credentialsFile, spreadsheetID, title string, rows [][]string) (*SheetResult, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	result := &SheetResult{SpreadsheetID: spreadsheetID}
	if spreadsheetID == "" {
		created, err := svc.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: title},
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("create spreadsheet: %w", err)
		}
		result.SpreadsheetID = created.SpreadsheetId
		result.URL = created.SpreadsheetUrl
	} else {
		_, err := svc.Spreadsheets.Values.Clear(
			result.SpreadsheetID, "Sheet1", &sheets.ClearValuesRequest{},
		).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("clear spreadsheet: %w", err)
		}
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err = svc.Spreadsheets.Values.Update(
		result.SpreadsheetID, "Sheet1!A1", &sheets.ValueRange{Values: values},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("write spreadsheet values: %w", err)
	}

	return result, nil
}
