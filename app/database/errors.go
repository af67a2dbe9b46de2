package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Typed store errors, checked with errors.Is by the transport layer.
var (
	// ErrConflict signals a uniqueness violation on create or update
	// (duplicate email, roll number, or subject code).
	ErrConflict = errors.New("already exists")

	// ErrNotFound signals that no row matched the lookup.
	ErrNotFound = errors.New("not found")

	// ErrBadReference signals a write that referenced a missing row,
	// e.g. declaring a result for a deleted student.
	ErrBadReference = errors.New("referenced entity does not exist")
)

// Postgres SQLSTATE codes for constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidTextRep      = "22P02"
)

// translate maps driver-level failures onto the store's error taxonomy.
// Uniqueness is enforced only by database constraints, never by
// check-then-insert, so this is the single place conflicts surface.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return ErrConflict
		case codeForeignKeyViolation:
			return ErrBadReference
		case codeInvalidTextRep:
			// A syntactically invalid UUID can never match a row.
			return ErrNotFound
		}
	}
	return err
}
