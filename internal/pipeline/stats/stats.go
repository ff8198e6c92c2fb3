package stats

import (
	"context"

	"outreach-automation/internal/common/errors"
	"outreach-automation/internal/common/sheets"
	"outreach-automation/internal/models"
)

// Summary holds the dashboard counters computed from the outreach log.
type Summary struct {
	TotalBrands int
	EmailsSent  int
	FollowUps   int
	SuccessRate int // percent, truncated
}

// Compute derives the summary from log rows. The success rate is sent*100
// divided by total with integer truncation, and 0 when the log is empty.
func Compute(rows []models.LogRow) Summary {
	s := Summary{TotalBrands: len(rows)}
	for _, row := range rows {
		if row.Status == models.StatusSent {
			s.EmailsSent++
		}
		if row.FollowUp != "" {
			s.FollowUps++
		}
	}
	if s.TotalBrands > 0 {
		s.SuccessRate = s.EmailsSent * 100 / s.TotalBrands
	}
	return s
}

// Load reads the full log and computes the summary. Nothing is cached; every
// call re-reads the store.
func Load(ctx context.Context, store sheets.Store) (Summary, []models.LogRow, error) {
	rows, err := store.ReadAll(ctx)
	if err != nil {
		return Summary{}, nil, errors.NewLogReadFailedError(err)
	}
	return Compute(rows), rows, nil
}
