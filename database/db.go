package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"libraryhub/internal/config"
	"libraryhub/internal/microservices/http-api/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const healthCheckPeriod = time.Minute

// DB bundles the gorm handle with the pgx pool underneath it.
type DB struct {
	Gorm  *gorm.DB
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// PoolConfig builds the pgx pool settings from the loaded configuration.
func PoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.DBMaxConns)
	poolCfg.MinConns = int32(cfg.DBMinConns)
	poolCfg.MaxConnLifetime = cfg.DBMaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	poolCfg.HealthCheckPeriod = healthCheckPeriod
	poolCfg.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	return poolCfg, nil
}

// ConnectDB opens the pool, verifies it and hands it to gorm.
func ConnectDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel(cfg)),
	})
	if err != nil {
		sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	db := &DB{Gorm: gdb, pool: pool, sqlDB: sqlDB}

	if cfg.DBAutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("database_migrated")
	}

	logger.Info("database_connected",
		"max_conns", poolCfg.MaxConns,
		"min_conns", poolCfg.MinConns,
	)
	return db, nil
}

// Migrate creates or updates the users, books and borrowlist tables.
func (db *DB) Migrate(ctx context.Context) error {
	err := db.Gorm.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.BorrowRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) Close() {
	db.sqlDB.Close()
	db.pool.Close()
}

func gormLogLevel(cfg *config.Config) gormlogger.LogLevel {
	switch {
	case cfg.IsProduction():
		return gormlogger.Error
	case cfg.LogLevel == "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
