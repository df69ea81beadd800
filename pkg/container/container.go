package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"timeline-backend/internal/config"
	infraCache "timeline-backend/internal/infrastructure/cache"
	"timeline-backend/internal/infrastructure/database"
	"timeline-backend/pkg/cache"
	"timeline-backend/pkg/logger"

	entryHandler "timeline-backend/internal/domains/entry/handler"
	entryRepo "timeline-backend/internal/domains/entry/repository"
	entryService "timeline-backend/internal/domains/entry/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache // nil when Redis is disabled or unreachable

	// ========================================
	// DOMAIN LAYERS
	// ========================================
	EntryRepo    entryRepo.EntryRepository
	EntryService entryService.ServiceInterface
	EntryHandler *entryHandler.EntryHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB, Cache) - phụ thuộc Config
// 3. Repository → Service → Handler
//
// Only an invalid configuration aborts startup. A missing DATABASE_URL or an
// unreachable database leaves the API up and answering with error payloads.
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("✅ Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 4: REPOSITORY → SERVICE → HANDLER
	// ========================================
	c.EntryRepo = entryRepo.NewPostgresRepository(c.DB, c.Cache)
	c.EntryService = entryService.NewEntryService(c.EntryRepo)
	c.EntryHandler = entryHandler.NewEntryHandler(c.EntryService)

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)

	if err := c.Config.DatabaseConfigured(); err != nil {
		logger.Error("❌ Database not configured, entry operations will fail", err)
		return nil
	}

	if err := c.DB.Connect(ctx); err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			return nil
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	readyCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.DB.WaitReady(readyCtx); err != nil {
		log.Warn().Err(err).Msg("⚠️  Database not reachable yet, serving degraded")
		return nil
	}
	log.Info().Msg("✅ Database connected")

	if c.Config.Database.AutoMigrate {
		if err := c.DB.RunMigrations(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return nil
}

func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("Redis disabled, entry list is not cached")
		return
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := redisCache.Connect(pingCtx); err != nil {
		// Redis failure không critical - log warning và continue
		logger.Warn("⚠️  Redis connection failed (non-critical)", err)
		_ = redisCache.Close()
		return
	}

	c.Cache = redisCache
	log.Info().Msg("✅ Redis connected")
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("⚠️  Failed to close Redis", err)
		}
	}

	log.Info().Msg("✅ Container cleanup completed")
}
