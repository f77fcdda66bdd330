package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

// Config carries the Postgres connection values. The caller resolves them
// (from application properties) so this package stays testable without a
// properties file on disk.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

// Open connects to Postgres and migrates the todos table.
func Open(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable search_path=%s",
		cfg.Host, cfg.Username, cfg.Password, cfg.Database, cfg.Port, cfg.Schema)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	if err := db.AutoMigrate(&entity.Todo{}); err != nil {
		return nil, fmt.Errorf("fail to migrate todos table: %w", err)
	}

	return db, nil
}
