package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations applies the schema idempotently at startup. Uniqueness
// (users.email, users.roll_no, subjects.sub_code) and the cascade chain
// from users through results to result_items live here, not in
// application code.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			roll_no VARCHAR(50) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			image VARCHAR(255) NOT NULL DEFAULT '',
			user_type VARCHAR(20) NOT NULL DEFAULT 'student'
				CHECK (user_type IN ('student', 'admin')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			sub_code VARCHAR(50) NOT NULL UNIQUE,
			sub_name VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			declaration_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS result_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			result_id UUID NOT NULL REFERENCES results(id) ON DELETE CASCADE,
			subject_id UUID NOT NULL REFERENCES subjects(id),
			marks_obtained NUMERIC(7,2) NOT NULL,
			total_marks NUMERIC(7,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_student_id ON results(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_result_items_result_id ON result_items(result_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
