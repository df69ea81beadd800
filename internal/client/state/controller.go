// Package state holds the client's session list of entries.
//
// Every mutation goes through Load, Add or Remove. Each call first tries the
// API and, when that fails, applies the change to the local fallback cache
// instead. The branch taken is reported in the returned Result.
package state

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"timeline-backend/internal/client/fallback"
	"timeline-backend/internal/domains/entry/model"
)

// API is the subset of the HTTP client the controller needs.
type API interface {
	List(ctx context.Context) ([]model.Entry, error)
	Create(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error)
	Delete(ctx context.Context, id string) error
}

// Source tells which branch served a controller call.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Result describes how a call was served. Err is the remote failure that
// caused a local fallback; it is nil on the remote branch.
type Result struct {
	Source Source
	Err    error
}

// Local reports whether the call fell back to the local cache.
func (r Result) Local() bool {
	return r.Source == SourceLocal
}

// Controller owns the in-memory entry list for one client session.
type Controller struct {
	api   API
	slot  fallback.Slot
	clock func() time.Time

	mu      sync.Mutex
	entries []model.Entry
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock replaces time.Now for locally synthesized entries.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

func NewController(api API, slot fallback.Slot, opts ...Option) *Controller {
	c := &Controller{
		api:     api,
		slot:    slot,
		clock:   time.Now,
		entries: []model.Entry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the list with the server's, or with the cached copy when the
// server is unavailable. A missing cache leaves the list as it was.
func (c *Controller) Load(ctx context.Context) (Result, error) {
	entries, err := c.api.List(ctx)
	if err == nil {
		model.SortByDateDesc(entries)
		c.replace(entries)
		return Result{Source: SourceRemote}, nil
	}

	log.Warn().Err(err).Msg("list failed, loading fallback cache")

	cached, found, cacheErr := c.slot.Load(ctx)
	if cacheErr != nil {
		return Result{Source: SourceLocal, Err: err}, fmt.Errorf("load fallback cache: %w", cacheErr)
	}
	if found {
		model.SortByDateDesc(cached)
		c.replace(cached)
	}
	return Result{Source: SourceLocal, Err: err}, nil
}

// Add creates an entry remotely, or synthesizes it locally and persists the
// whole list to the cache when the server cannot take it. An invalid draft is
// rejected before either branch runs.
func (c *Controller) Add(ctx context.Context, draft model.Draft) (model.Entry, Result, error) {
	req := draft.ToRequest()
	req.Normalize()
	if err := req.Validate(); err != nil {
		return model.Entry{}, Result{}, model.NewValidationError(err)
	}

	created, err := c.api.Create(ctx, req)
	if err == nil {
		c.prepend(*created)
		return *created, Result{Source: SourceRemote}, nil
	}

	log.Warn().Err(err).Msg("create failed, saving entry locally")

	local := c.synthesize(draft)
	snapshot := c.prepend(local)

	if saveErr := c.slot.Save(ctx, snapshot); saveErr != nil {
		return local, Result{Source: SourceLocal, Err: err}, fmt.Errorf("save fallback cache: %w", saveErr)
	}
	return local, Result{Source: SourceLocal, Err: err}, nil
}

// Remove deletes an entry. The entry leaves the list on both branches; on the
// local branch the remaining list is written to the cache.
func (c *Controller) Remove(ctx context.Context, id string) (Result, error) {
	err := c.api.Delete(ctx, id)
	snapshot := c.drop(id)
	if err == nil {
		return Result{Source: SourceRemote}, nil
	}

	log.Warn().Err(err).Str("id", id).Msg("delete failed, updating fallback cache")

	if saveErr := c.slot.Save(ctx, snapshot); saveErr != nil {
		return Result{Source: SourceLocal, Err: err}, fmt.Errorf("save fallback cache: %w", saveErr)
	}
	return Result{Source: SourceLocal, Err: err}, nil
}

// Entries returns a copy of the current list, newest date first.
func (c *Controller) Entries() []model.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// synthesize stamps a draft with a client id and creation time.
func (c *Controller) synthesize(d model.Draft) model.Entry {
	now := c.clock()
	return model.Entry{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Photo:       d.Photo,
		Description: d.Description,
		Date:        d.Date,
		Link:        model.NormalizeLink(d.Link),
		CreatedAt:   now.UTC().Round(0),
	}
}

func (c *Controller) replace(entries []model.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append([]model.Entry{}, entries...)
}

func (c *Controller) prepend(e model.Entry) []model.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]model.Entry, 0, len(c.entries)+1)
	next = append(next, e)
	next = append(next, c.entries...)
	model.SortByDateDesc(next)
	c.entries = next
	return c.snapshotLocked()
}

func (c *Controller) drop(id string) []model.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.entries[:0:0]
	for _, e := range c.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.entries = kept
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() []model.Entry {
	out := make([]model.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
