package database

import (
	"context"
	"fmt"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

// CreateSubject inserts a subject; ErrConflict when sub_code is taken.
func (s *Store) CreateSubject(ctx context.Context, subject *models.Subject) error {
	query := `INSERT INTO subjects (sub_code, sub_name)
			  VALUES ($1, $2)
			  RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query, subject.SubCode, subject.SubName).
		Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", translate(err))
	}
	return nil
}

func (s *Store) GetSubjectByID(ctx context.Context, subjectID string) (*models.Subject, error) {
	subject := &models.Subject{}
	query := `SELECT id, sub_code, sub_name, created_at FROM subjects WHERE id = $1`

	err := s.db.QueryRowContext(ctx, query, subjectID).Scan(
		&subject.ID, &subject.SubCode, &subject.SubName, &subject.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return subject, nil
}

func (s *Store) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	query := `SELECT id, sub_code, sub_name, created_at FROM subjects ORDER BY sub_code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.SubCode, &subject.SubName, &subject.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}
