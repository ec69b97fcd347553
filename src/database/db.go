package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Database holds the PostgreSQL connection pool
type Database struct {
	pool *pgxpool.Pool
}

// New creates a new database connection
func New(ctx context.Context, databaseURL string) (*Database, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	db := &Database{pool: pool}

	if err := db.initializeSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// NewDatabaseFromPool wraps an existing pool (used in tests)
func NewDatabaseFromPool(pool *pgxpool.Pool) *Database {
	return &Database{pool: pool}
}

// Close closes the database connection pool
func (db *Database) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetPool returns the connection pool
func (db *Database) GetPool() *pgxpool.Pool {
	return db.pool
}

// initializeSchema reads and executes schema.sql
func (db *Database) initializeSchema(ctx context.Context) error {
	schemaPath := "schema.sql"

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		content, err = os.ReadFile(filepath.Join(".", schemaPath))
		if err != nil {
			return fmt.Errorf("failed to read schema.sql: %w", err)
		}
	}

	if _, err := db.pool.Exec(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := db.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database schema initialized")
	return nil
}

// runMigrations applies additive schema changes for databases created
// before the corresponding columns existed in schema.sql.
func (db *Database) runMigrations(ctx context.Context) error {
	// Migration 1: church_info gained facebook/show_members_link and
	// configurable field labels after the initial release.
	_, err := db.pool.Exec(ctx, `
		ALTER TABLE church_info
		ADD COLUMN IF NOT EXISTS facebook VARCHAR(255),
		ADD COLUMN IF NOT EXISTS show_members_link BOOLEAN DEFAULT false,
		ADD COLUMN IF NOT EXISTS field_label_pastor VARCHAR(100) DEFAULT 'Pastor',
		ADD COLUMN IF NOT EXISTS field_label_address VARCHAR(100) DEFAULT 'Address',
		ADD COLUMN IF NOT EXISTS field_label_phone VARCHAR(100) DEFAULT 'Phone',
		ADD COLUMN IF NOT EXISTS field_label_email VARCHAR(100) DEFAULT 'Email',
		ADD COLUMN IF NOT EXISTS field_label_website VARCHAR(100) DEFAULT 'Website',
		ADD COLUMN IF NOT EXISTS field_label_facebook VARCHAR(100) DEFAULT 'Facebook'
	`)
	if err != nil {
		return fmt.Errorf("failed to extend church_info: %w", err)
	}

	// Migration 2: older sms_recipients rows may predate the error_message column.
	_, err = db.pool.Exec(ctx, `
		ALTER TABLE sms_recipients
		ADD COLUMN IF NOT EXISTS error_message TEXT
	`)
	if err != nil {
		return fmt.Errorf("failed to extend sms_recipients: %w", err)
	}

	log.Info().Msg("migrations completed")
	return nil
}

// Health checks if the database is healthy
func (db *Database) Health(ctx context.Context) error {
	if db == nil || db.pool == nil {
		return fmt.Errorf("database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.pool.Ping(ctx)
}

// QueryRow executes a query and returns a single row
func (db *Database) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// Query executes a query and returns rows
func (db *Database) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

// Exec executes a query without returning rows
func (db *Database) Exec(ctx context.Context, sql string, args ...interface{}) error {
	_, err := db.pool.Exec(ctx, sql, args...)
	return err
}
