package store

import (
	"context"

	"github.com/joescharf/pomo/internal/models"
)

// Store defines the persistence interface for session history.
type Store interface {
	// Load returns all records in chronological (insertion) order.
	// A store that has never been written to yields an empty slice.
	Load(ctx context.Context) ([]models.SessionRecord, error)

	// Append adds one record and persists it durably before returning.
	// The record's ID is assigned here if empty.
	Append(ctx context.Context, rec *models.SessionRecord) error

	// Path returns the location of the backing file.
	Path() string
}
