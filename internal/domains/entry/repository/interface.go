package repository

import (
	"context"

	"timeline-backend/internal/domains/entry/model"
)

// =====================================================
// ENTRY REPOSITORY INTERFACE
// =====================================================

// EntryRepository errors are classified: callers can errors.Is them against
// model.ErrConfiguration, model.ErrConnectivity and model.ErrSchemaNotReady.
type EntryRepository interface {
	// List returns every entry, newest date first
	List(ctx context.Context) ([]model.Entry, error)

	// Create inserts the entry and returns the stored row (with created_at)
	Create(ctx context.Context, entry *model.Entry) (*model.Entry, error)

	// Delete removes the entry; unknown ids (uuid or not) are not an error
	Delete(ctx context.Context, id string) error
}
