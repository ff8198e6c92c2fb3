package stats

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/sheets"
	"outreach-automation/internal/models"
)

func sentRow(followUp string) models.LogRow {
	return models.LogRow{
		BrandName: "Brand",
		Status:    models.StatusSent,
		FollowUp:  followUp,
	}
}

func TestCompute_EmptyLog(t *testing.T) {
	s := Compute(nil)
	assert.Equal(t, 0, s.TotalBrands)
	assert.Equal(t, 0, s.EmailsSent)
	assert.Equal(t, 0, s.FollowUps)
	assert.Equal(t, 0, s.SuccessRate)
}

func TestCompute_TruncatesSuccessRate(t *testing.T) {
	rows := []models.LogRow{
		sentRow(""),
		sentRow("2026-03-20"),
		sentRow(""),
		{BrandName: "NoEmail", Status: ""},
	}
	s := Compute(rows)
	assert.Equal(t, 4, s.TotalBrands)
	assert.Equal(t, 3, s.EmailsSent)
	assert.Equal(t, 1, s.FollowUps)
	assert.Equal(t, 75, s.SuccessRate)

	// 2/3 truncates to 66, not rounds to 67
	s = Compute(rows[1:])
	assert.Equal(t, 66, s.SuccessRate)
}

func TestCompute_AllSent(t *testing.T) {
	s := Compute([]models.LogRow{sentRow(""), sentRow("")})
	assert.Equal(t, 100, s.SuccessRate)
}

func TestLoad_ReadsStore(t *testing.T) {
	store := sheets.NewMemoryStore()
	store.Rows = []models.LogRow{sentRow(""), {BrandName: "Quiet"}}

	summary, rows, err := Load(context.Background(), store)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 2, summary.TotalBrands)
	assert.Equal(t, 1, summary.EmailsSent)
	assert.Equal(t, 50, summary.SuccessRate)
}

func TestLoad_ReadFailure(t *testing.T) {
	store := sheets.NewMemoryStore()
	store.ReadErr = fmt.Errorf("network unreachable")

	_, _, err := Load(context.Background(), store)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeLogReadFailed, errors.CodeOf(err))
}
