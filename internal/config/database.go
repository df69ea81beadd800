package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timeline-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig đọc pool settings từ environment variables và trả về DBConfig.
// URL có thể rỗng; database.PostgresDB sẽ báo ErrNotConfigured.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNECTIONS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNECTIONS: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	maxConnLifetime, err := time.ParseDuration(getEnv("DB_MAX_CONN_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME: %w", err)
	}

	maxConnIdleTime, err := time.ParseDuration(getEnv("DB_MAX_CONN_IDLE_TIME", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE_TIME: %w", err)
	}

	healthCheckPeriod, err := time.ParseDuration(getEnv("DB_HEALTH_CHECK_PERIOD", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_HEALTH_CHECK_PERIOD: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("DB_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"DB_MAX_CONN_LIFETIME", maxConnLifetime},
		{"DB_MAX_CONN_IDLE_TIME", maxConnIdleTime},
		{"DB_HEALTH_CHECK_PERIOD", healthCheckPeriod},
		{"DB_CONNECT_TIMEOUT", connectTimeout},
	}
	for _, d := range positive {
		if d.value <= 0 {
			return nil, fmt.Errorf("%s must be > 0, got %s", d.name, d.value)
		}
	}
	if retryDelay < 0 {
		return nil, fmt.Errorf("DB_RETRY_DELAY must be >= 0, got %s", retryDelay)
	}

	if maxConns < 1 {
		return nil, fmt.Errorf("DB_MAX_CONNECTIONS must be >= 1, got %d", maxConns)
	}
	if minConns < 0 || minConns > maxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS must be within [0, %d], got %d", maxConns, minConns)
	}

	return &database.DBConfig{
		URL:               strings.TrimSpace(getEnv("DATABASE_URL", "")),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,
		MaxRetries:        maxRetries,
		RetryDelay:        retryDelay,
		ConnectTimeout:    connectTimeout,
	}, nil
}
