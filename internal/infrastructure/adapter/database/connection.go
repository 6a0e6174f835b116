package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "luckyten/internal/domain/port/core"
)

// Connect establishes a database connection with retry and pooling
// configured from the given Config
func Connect(config *Config, log coreport.Logger, timeProvider coreport.TimeProvider) (*gorm.DB, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	log.Info("Connecting to database", map[string]any{
		"host": config.Host,
		"port": config.Port,
		"name": config.Database,
	})

	attempts := config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var db *gorm.DB
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			log.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
			})
			time.Sleep(config.RetryDelay)
		}

		db, err = gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
			Logger: NewGormLogger(log),
			NowFunc: func() time.Time {
				return timeProvider.Now()
			},
		})
		if err == nil {
			break
		}

		log.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Successfully connected to database", map[string]any{
		"host":           config.Host,
		"name":           config.Database,
		"max_open_conns": config.MaxOpenConns,
	})

	return db, nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
