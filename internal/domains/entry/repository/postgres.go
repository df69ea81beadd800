package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"timeline-backend/internal/domains/entry/model"
	"timeline-backend/internal/infrastructure/database"
	"timeline-backend/pkg/cache"
)

// Cache key constants
const (
	entryListCacheKey = "timeline:entries:list"
	cacheTTL          = 5 * time.Minute
)

// Postgres error codes
const (
	pgUndefinedTable = "42P01"
)

// querier is the part of *pgxpool.Pool the repository uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// postgresRepository implements EntryRepository.
// cache có thể nil khi Redis bị tắt hoặc không kết nối được.
type postgresRepository struct {
	acquire func() (querier, error)
	cache   cache.Cache
}

// NewPostgresRepository creates a new entry repository instance
func NewPostgresRepository(db *database.PostgresDB, cache cache.Cache) EntryRepository {
	return &postgresRepository{
		acquire: func() (querier, error) {
			pool, err := db.Acquire()
			if err != nil {
				return nil, err
			}
			return pool, nil
		},
		cache: cache,
	}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Entry, error) {
	// Try cache first
	if r.cache != nil {
		var cached []model.Entry
		found, err := r.cache.Get(ctx, entryListCacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("entry list cache read failed")
		}
		if err == nil && found {
			return cached, nil
		}
	}

	pool, err := r.acquire()
	if err != nil {
		return nil, classifyError(err)
	}

	query := `
        SELECT id, photo, description, date, link, created_at
        FROM timeline_entries
        ORDER BY date DESC, created_at DESC
    `

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, classifyError(err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, entryListCacheKey, entries, cacheTTL); err != nil {
			log.Warn().Err(err).Msg("entry list cache write failed")
		}
	}

	return entries, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Entry) (*model.Entry, error) {
	pool, err := r.acquire()
	if err != nil {
		return nil, classifyError(err)
	}

	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("entry id %q is not a uuid: %w", e.ID, err)
	}

	query := `
        INSERT INTO timeline_entries (id, photo, description, date, link)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, photo, description, date, link, created_at
    `

	created, err := scanEntry(pool.QueryRow(ctx, query,
		id,
		e.Photo,
		e.Description,
		e.Date.Time,
		e.Link,
	))
	if err != nil {
		return nil, classifyError(err)
	}

	r.invalidateListCache(ctx)
	return created, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	pool, err := r.acquire()
	if err != nil {
		return classifyError(err)
	}

	// Compared as text so client generated ids reach the store and match nothing.
	tag, err := pool.Exec(ctx, `DELETE FROM timeline_entries WHERE id::text = $1`, id)
	if err != nil {
		return classifyError(err)
	}

	if tag.RowsAffected() == 0 {
		log.Debug().Str("entry_id", id).Msg("delete matched no rows")
	}

	r.invalidateListCache(ctx)
	return nil
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, entryListCacheKey); err != nil {
		log.Warn().Err(err).Msg("entry list cache invalidation failed")
	}
}

func scanEntry(row pgx.Row) (*model.Entry, error) {
	var (
		e    model.Entry
		date time.Time
	)

	if err := row.Scan(&e.ID, &e.Photo, &e.Description, &date, &e.Link, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.Date = model.DateOf(date)
	e.Link = model.NormalizeLink(e.Link)
	return &e, nil
}

// classifyError maps driver errors onto the entry error kinds.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, database.ErrNotConfigured):
		return fmt.Errorf("%w: %v", model.ErrConfiguration, err)
	case errors.Is(err, database.ErrNotConnected):
		return fmt.Errorf("%w: %v", model.ErrConnectivity, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUndefinedTable {
			return fmt.Errorf("%w: %v", model.ErrSchemaNotReady, err)
		}
		return fmt.Errorf("entry store query failed: %w", err)
	}

	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) || pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", model.ErrConnectivity, err)
	}

	return fmt.Errorf("entry store failed: %w", err)
}
