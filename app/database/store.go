package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Store wraps the shared *sql.DB so handlers receive their persistence
// dependency explicitly instead of reading a package global.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle for migrations and seeding commands.
func (s *Store) DB() *sql.DB {
	return s.db
}
