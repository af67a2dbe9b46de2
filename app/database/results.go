package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

// ResultEntry is one qualifying per-subject line of a declaration.
// Entries with missing marks never reach this type; the transport layer
// filters them out before calling DeclareResult.
type ResultEntry struct {
	SubjectID     string
	MarksObtained float64
	TotalMarks    float64
}

// DeclareResult creates one Result row for the student plus one
// ResultItem per entry, all inside a single transaction. The Result row
// is created even when entries is empty, matching the original
// declaration flow. A dangling student or subject ID fails the
// transaction with ErrBadReference.
func (s *Store) DeclareResult(ctx context.Context, studentID string, entries []ResultEntry) (*models.Result, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result := &models.Result{StudentID: studentID, DeclarationDate: time.Now()}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO results (student_id, declaration_date)
		 VALUES ($1, $2)
		 RETURNING id, declaration_date, created_at`,
		studentID, result.DeclarationDate,
	).Scan(&result.ID, &result.DeclarationDate, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create result: %w", translate(err))
	}

	itemStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO result_items (result_id, subject_id, marks_obtained, total_marks)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare item insert: %w", err)
	}
	defer itemStmt.Close()

	for _, entry := range entries {
		item := &models.ResultItem{
			ResultID:      result.ID,
			SubjectID:     entry.SubjectID,
			MarksObtained: entry.MarksObtained,
			TotalMarks:    entry.TotalMarks,
		}
		if err := itemStmt.QueryRowContext(ctx,
			result.ID, entry.SubjectID, entry.MarksObtained, entry.TotalMarks,
		).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("failed to create result item: %w", translate(err))
		}
		result.Items = append(result.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit result declaration: %w", err)
	}
	return result, nil
}

// GetResultWithItems loads one result with its items and their subjects.
func (s *Store) GetResultWithItems(ctx context.Context, resultID string) (*models.Result, error) {
	result := &models.Result{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, student_id, declaration_date, created_at FROM results WHERE id = $1`,
		resultID,
	).Scan(&result.ID, &result.StudentID, &result.DeclarationDate, &result.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}

	items, err := s.listItems(ctx, resultID)
	if err != nil {
		return nil, err
	}
	result.Items = items
	return result, nil
}

// ListResultsForStudent returns the student's results, items included,
// newest declaration first. A deleted or unknown student simply yields
// an empty slice.
func (s *Store) ListResultsForStudent(ctx context.Context, studentID string) ([]*models.Result, error) {
	return s.listResults(ctx,
		`SELECT id, student_id, declaration_date, created_at
		 FROM results WHERE student_id = $1
		 ORDER BY created_at DESC`, studentID)
}

// ListAllResults returns every declared result with student and items.
func (s *Store) ListAllResults(ctx context.Context) ([]*models.Result, error) {
	results, err := s.listResults(ctx,
		`SELECT id, student_id, declaration_date, created_at
		 FROM results ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	// Attach student rows for the admin views and the export.
	students := map[string]*models.User{}
	for _, result := range results {
		if student, ok := students[result.StudentID]; ok {
			result.Student = student
			continue
		}
		student, err := s.GetUserByID(ctx, result.StudentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load student for result %s: %w", result.ID, err)
		}
		students[result.StudentID] = student
		result.Student = student
	}
	return results, nil
}

func (s *Store) listResults(ctx context.Context, query string, args ...interface{}) ([]*models.Result, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := []*models.Result{}
	for rows.Next() {
		result := &models.Result{}
		if err := rows.Scan(&result.ID, &result.StudentID, &result.DeclarationDate, &result.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, result := range results {
		items, err := s.listItems(ctx, result.ID)
		if err != nil {
			return nil, err
		}
		result.Items = items
	}
	return results, nil
}

func (s *Store) listItems(ctx context.Context, resultID string) ([]*models.ResultItem, error) {
	query := `
		SELECT ri.id, ri.result_id, ri.subject_id, ri.marks_obtained, ri.total_marks,
			   sub.id, sub.sub_code, sub.sub_name, sub.created_at
		FROM result_items ri
		JOIN subjects sub ON ri.subject_id = sub.id
		WHERE ri.result_id = $1
		ORDER BY ri.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to list result items: %w", err)
	}
	defer rows.Close()

	items := []*models.ResultItem{}
	for rows.Next() {
		item := &models.ResultItem{}
		subject := &models.Subject{}
		if err := rows.Scan(
			&item.ID, &item.ResultID, &item.SubjectID, &item.MarksObtained, &item.TotalMarks,
			&subject.ID, &subject.SubCode, &subject.SubName, &subject.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result item: %w", err)
		}
		item.Subject = subject
		items = append(items, item)
	}
	return items, rows.Err()
}
