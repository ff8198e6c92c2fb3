package sheets

import (
	"context"

	"outreach-automation/internal/models"
)

// MemoryStore is an in-memory Store used by tests and local dry runs.
type MemoryStore struct {
	HasHeader bool
	Rows      []models.LogRow

	HeaderErr error
	AppendErr error
	ReadErr   error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) EnsureHeader(ctx context.Context) error {
	if m.HeaderErr != nil {
		return m.HeaderErr
	}
	m.HasHeader = true
	return nil
}

func (m *MemoryStore) Append(ctx context.Context, row models.LogRow) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Rows = append(m.Rows, row)
	return nil
}

func (m *MemoryStore) ReadAll(ctx context.Context) ([]models.LogRow, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	out := make([]models.LogRow, len(m.Rows))
	copy(out, m.Rows)
	return out, nil
}
