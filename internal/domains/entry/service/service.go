package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"timeline-backend/internal/domains/entry/model"
	"timeline-backend/internal/domains/entry/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type entryService struct {
	entryRepo repository.EntryRepository
	newID     func() uuid.UUID
}

func NewEntryService(entryRepo repository.EntryRepository) ServiceInterface {
	return &entryService{
		entryRepo: entryRepo,
		newID:     uuid.New,
	}
}

// =====================================================
// LIST ENTRIES
// =====================================================

func (s *entryService) ListEntries(ctx context.Context) ([]model.Entry, error) {
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSchemaNotReady) {
			log.Warn().Err(err).Msg("timeline schema not ready, returning empty list")
			return []model.Entry{}, nil
		}
		log.Error().Err(err).Msg("Error fetching entries")
		return nil, model.NewListFailedError(err)
	}

	if entries == nil {
		entries = []model.Entry{}
	}
	model.SortByDateDesc(entries)
	return entries, nil
}

// =====================================================
// CREATE ENTRY
// =====================================================

func (s *entryService) CreateEntry(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	// Step 1: Normalize + validate
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err)
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, model.NewValidationError(err)
	}

	// Step 2: Build entity
	entry := &model.Entry{
		ID:          s.newID().String(),
		Photo:       req.Photo,
		Description: req.Description,
		Date:        date,
		Link:        req.Link,
	}

	// Step 3: Persist
	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		log.Error().Err(err).Msg("Error creating entry")
		return nil, model.NewCreateFailedError(err)
	}

	return created, nil
}

// =====================================================
// DELETE ENTRY
// =====================================================

func (s *entryService) DeleteEntry(ctx context.Context, id string) error {
	// Every id goes to the store, so an unavailable store is reported even for
	// ids it could never hold (e.g. ones generated by an offline client).
	if err := s.entryRepo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Error().Err(err).Str("entry_id", id).Msg("Error deleting entry")
		return model.NewDeleteFailedError(err)
	}

	return nil
}
