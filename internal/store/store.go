// Package store persists solve runs and their per-set results to SQLite.
package store

import (
	"context"

	"github.com/chainworks/molecules/internal/model"
)

// SaveParams holds parameters for persisting a solve run.
type SaveParams struct {
	Label     string
	InputFile string
	Sets      []model.ChainSet
	Areas     []int
}

// ListParams holds parameters for listing runs.
type ListParams struct {
	Limit int
}

// Store defines the run-history interface.
type Store interface {
	// SaveRun persists one solve run with its per-set results.
	// Returns the created run, results included.
	SaveRun(ctx context.Context, p SaveParams) (*model.Run, error)

	// GetRun retrieves a run and its results by ID.
	GetRun(ctx context.Context, id string) (*model.Run, error)

	// ListRuns lists recent runs, newest first, without their results.
	ListRuns(ctx context.Context, p ListParams) ([]model.Run, error)

	// Close closes the store.
	Close() error
}
