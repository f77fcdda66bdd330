package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Config carries the Postgres connection values, resolved by the caller.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

// Open connects to Postgres through database/sql and ensures the todos table
// exists.
func Open(cfg Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.Schema)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS todos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			is_done BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create todos table: %w", err)
	}

	return db, nil
}
