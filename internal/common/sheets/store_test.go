package sheets

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-automation/internal/models"
)

type fakeValuesAPI struct {
	values [][]interface{}
	getErr error

	appended [][]interface{}
	inserted [][]interface{}
}

func (f *fakeValuesAPI) GetValues(ctx context.Context, a1Range string) ([][]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.values, nil
}

func (f *fakeValuesAPI) AppendRow(ctx context.Context, values []interface{}) error {
	f.appended = append(f.appended, values)
	return nil
}

func (f *fakeValuesAPI) InsertRowAtTop(ctx context.Context, values []interface{}) error {
	f.inserted = append(f.inserted, values)
	return nil
}

func headerCells() []interface{} {
	cells := make([]interface{}, len(models.LogHeader))
	for i, h := range models.LogHeader {
		cells[i] = h
	}
	return cells
}

func TestEnsureHeader_EmptySheetAppendsHeader(t *testing.T) {
	api := &fakeValuesAPI{}
	store := &SheetStore{client: api}

	require.NoError(t, store.EnsureHeader(context.Background()))
	require.Len(t, api.appended, 1)
	assert.Equal(t, headerCells(), api.appended[0])
	assert.Empty(t, api.inserted)
}

func TestEnsureHeader_MissingHeaderInsertsAtTop(t *testing.T) {
	api := &fakeValuesAPI{values: [][]interface{}{
		{"Some Brand", "https://brand.ae", "hi@brand.ae"},
	}}
	store := &SheetStore{client: api}

	require.NoError(t, store.EnsureHeader(context.Background()))
	require.Len(t, api.inserted, 1)
	assert.Equal(t, headerCells(), api.inserted[0])
	assert.Empty(t, api.appended)
}

func TestEnsureHeader_PresentHeaderIsNoOp(t *testing.T) {
	api := &fakeValuesAPI{values: [][]interface{}{headerCells()}}
	store := &SheetStore{client: api}

	require.NoError(t, store.EnsureHeader(context.Background()))
	assert.Empty(t, api.appended)
	assert.Empty(t, api.inserted)
}

func TestEnsureHeader_ReadFailure(t *testing.T) {
	api := &fakeValuesAPI{getErr: fmt.Errorf("permission denied")}
	store := &SheetStore{client: api}

	err := store.EnsureHeader(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header check failed")
}

func TestAppend_WritesSheetColumnOrder(t *testing.T) {
	api := &fakeValuesAPI{}
	store := &SheetStore{client: api}

	row := models.LogRow{
		BrandName: "Brandia",
		URL:       "https://brandia.ae",
		Email:     "info@brandia.ae",
		Instagram: "None",
		Status:    models.StatusSent,
		Timestamp: "2026-03-14 10:30:00",
	}
	require.NoError(t, store.Append(context.Background(), row))
	require.Len(t, api.appended, 1)
	assert.Equal(t, []interface{}{
		"Brandia", "https://brandia.ae", "info@brandia.ae", "None", "Sent", "2026-03-14 10:30:00", "",
	}, api.appended[0])
}

func TestReadAll_MapsHeaderKeyedRecords(t *testing.T) {
	api := &fakeValuesAPI{values: [][]interface{}{
		headerCells(),
		{"Brandia", "https://brandia.ae", "info@brandia.ae", "None", "Sent", "2026-03-14 10:30:00", ""},
		// short row, trailing columns default to empty
		{"Beta", "https://beta.ae"},
	}}
	store := &SheetStore{client: api}

	rows, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Brandia", rows[0].BrandName)
	assert.Equal(t, "Sent", rows[0].Status)
	assert.Equal(t, "None", rows[0].Instagram)

	assert.Equal(t, "Beta", rows[1].BrandName)
	assert.Equal(t, "https://beta.ae", rows[1].URL)
	assert.Equal(t, "", rows[1].Email)
	assert.Equal(t, "", rows[1].Status)
}

func TestReadAll_HeaderOnlySheetIsEmpty(t *testing.T) {
	api := &fakeValuesAPI{values: [][]interface{}{headerCells()}}
	store := &SheetStore{client: api}

	rows, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
