package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gowthamsai117/financial-app/internal/models"
)

// InitDB opens a Postgres connection and makes sure the transactions table exists.
func InitDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	if err = createTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			date TEXT NOT NULL,
			time TEXT,
			type TEXT NOT NULL DEFAULT 'expense',
			category TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			notes TEXT
		);
	`

	_, err := db.ExecContext(ctx, query)
	return err
}

// InitSQLite opens (or creates) a SQLite database at path and migrates the
// transactions table. Use ":memory:" for a throwaway database.
func InitSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sqlite handle: %w", err)
	}
	// SQLite allows a single writer; an in-memory database also lives on one connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return db, nil
}
