package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"outreach-automation/internal/common/config"
)

// Client wraps the Google Sheets service for one spreadsheet, opened by name
// the way the operator sees it in Drive.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetTitle    string
}

// Open authenticates with the service credential file and resolves the named
// spreadsheet via the Drive API. The first sheet tab is used for all reads and
// appends.
func Open(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	driveSvc, err := drive.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile), option.WithScopes(drive.DriveReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", cfg.SpreadsheetName)
	list, err := driveSvc.Files.List().Q(query).PageSize(1).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to look up spreadsheet %q: %w", cfg.SpreadsheetName, err)
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("spreadsheet %q not found", cfg.SpreadsheetName)
	}
	spreadsheetID := list.Files[0].Id

	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile), option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %q has no sheets", cfg.SpreadsheetName)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetTitle:    meta.Sheets[0].Properties.Title,
	}, nil
}

func (c *Client) rangeFor(a1 string) string {
	return fmt.Sprintf("'%s'!%s", c.sheetTitle, a1)
}

// GetValues reads a cell range from the first sheet.
func (c *Client) GetValues(ctx context.Context, a1 string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.rangeFor(a1)).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// AppendRow appends one row after the last non-empty row of the first sheet.
func (c *Client) AppendRow(ctx context.Context, values []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.rangeFor("A:G"), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

// InsertRowAtTop inserts one row before row 1 and writes values into it.
func (c *Client) InsertRowAtTop(ctx context.Context, values []interface{}) error {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return err
	}
	var sheetID int64 = -1
	for _, s := range meta.Sheets {
		if s.Properties.Title == c.sheetTitle {
			sheetID = s.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return fmt.Errorf("sheet %q not found", c.sheetTitle)
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: 0,
					EndIndex:   1,
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return err
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, c.rangeFor("A1"), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}
