package service

import (
	"context"

	"timeline-backend/internal/domains/entry/model"
)

// =====================================================
// ENTRY SERVICE INTERFACE
// =====================================================

// ServiceInterface never leaks raw store errors: every failure is a *model.EntryError.
type ServiceInterface interface {
	// ListEntries returns all entries, newest date first.
	// A missing table means "no data yet" and yields an empty list.
	ListEntries(ctx context.Context) ([]model.Entry, error)

	// CreateEntry validates and persists a new entry
	CreateEntry(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error)

	// DeleteEntry removes an entry; unknown ids succeed
	DeleteEntry(ctx context.Context, id string) error
}
