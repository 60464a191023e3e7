// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
)

// FakeSheet is an in-memory implementation of service.Sheet for testing.
type FakeSheet struct {
	mu   sync.RWMutex
	rows [][]string

	// Written holds the statuses from the last WriteStatuses call, nil
	// if it was never called.
	Written []string

	// Error injection for testing
	RowsErr          error
	WriteStatusesErr error
}

// NewFakeSheet creates a FakeSheet with the given data rows (row 2 onward).
func NewFakeSheet(rows ...[]string) *FakeSheet {
	return &FakeSheet{rows: rows}
}

// AddRow appends a data row.
func (f *FakeSheet) AddRow(cells ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, cells)
}

// Rows implements service.Sheet.
func (f *FakeSheet) Rows(ctx context.Context) ([][]string, error) {
	if f.RowsErr != nil {
		return nil, f.RowsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([][]string, len(f.rows))
	copy(result, f.rows)
	return result, nil
}

// WriteStatuses implements service.Sheet.
func (f *FakeSheet) WriteStatuses(ctx context.Context, statuses []string) error {
	if f.WriteStatusesErr != nil {
		return f.WriteStatusesErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Written = make([]string, len(statuses))
	copy(f.Written, statuses)
	return nil
}
