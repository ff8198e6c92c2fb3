package sheets

import (
	"context"
	"fmt"

	"outreach-automation/internal/models"
)

// Store is the contract every consumer of the outreach log depends on.
// Rows are append-only; committed rows are never updated by this system.
// Single-writer access is assumed, there is no locking on append.
type Store interface {
	// EnsureHeader inserts the fixed header row at the top if it is missing.
	EnsureHeader(ctx context.Context) error
	// Append adds one row after the last committed row, in send order.
	Append(ctx context.Context, row models.LogRow) error
	// ReadAll returns every committed row under the header, oldest first.
	ReadAll(ctx context.Context) ([]models.LogRow, error)
}

// valuesAPI is the slice of the spreadsheet client SheetStore needs.
type valuesAPI interface {
	GetValues(ctx context.Context, a1Range string) ([][]interface{}, error)
	AppendRow(ctx context.Context, values []interface{}) error
	InsertRowAtTop(ctx context.Context, values []interface{}) error
}

// SheetStore implements Store on a Google Sheets spreadsheet.
type SheetStore struct {
	client valuesAPI
}

func NewSheetStore(client *Client) *SheetStore {
	return &SheetStore{client: client}
}

func (s *SheetStore) EnsureHeader(ctx context.Context) error {
	values, err := s.client.GetValues(ctx, "A1:G1")
	if err != nil {
		return fmt.Errorf("header check failed: %w", err)
	}

	header := make([]interface{}, len(models.LogHeader))
	for i, h := range models.LogHeader {
		header[i] = h
	}

	if len(values) == 0 || len(values[0]) == 0 {
		// Empty sheet: the header becomes row 1 directly.
		return s.client.AppendRow(ctx, header)
	}
	if fmt.Sprint(values[0][0]) != models.LogHeader[0] {
		return s.client.InsertRowAtTop(ctx, header)
	}
	return nil
}

func (s *SheetStore) Append(ctx context.Context, row models.LogRow) error {
	return s.client.AppendRow(ctx, row.Values())
}

func (s *SheetStore) ReadAll(ctx context.Context) ([]models.LogRow, error) {
	values, err := s.client.GetValues(ctx, "A:G")
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return nil, nil
	}

	header := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		header = append(header, fmt.Sprint(cell))
	}

	rows := make([]models.LogRow, 0, len(values)-1)
	for _, raw := range values[1:] {
		record := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(raw) {
				record[key] = fmt.Sprint(raw[i])
			}
		}
		rows = append(rows, models.LogRowFromRecord(record))
	}
	return rows, nil
}
