package database

import (
	"context"
	"fmt"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

// CreateUser inserts a new account. The password must already be hashed
// by the caller. Returns ErrConflict when the email or roll number is
// taken; the database constraint is the only uniqueness check.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (name, email, roll_no, password, image, user_type)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.RollNo, user.Password, user.Image, user.UserType,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, roll_no, password, image, user_type, created_at, updated_at
			  FROM users WHERE email = $1`

	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.RollNo, &user.Password,
		&user.Image, &user.UserType, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, roll_no, password, image, user_type, created_at, updated_at
			  FROM users WHERE id = $1`

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.RollNo, &user.Password,
		&user.Image, &user.UserType, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// UpdateUser applies a partial profile update. An empty image keeps the
// stored filename. Changing roll_no to a taken value fails with
// ErrConflict via the column constraint.
func (s *Store) UpdateUser(ctx context.Context, userID, name, rollNo, image string) error {
	query := `UPDATE users
			  SET name = $1, roll_no = $2,
				  image = COALESCE(NULLIF($3, ''), image),
				  updated_at = NOW()
			  WHERE id = $4`

	res, err := s.db.ExecContext(ctx, query, name, rollNo, image, userID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translate(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := s.db.ExecContext(ctx, query, hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", translate(err))
	}
	return nil
}

// DeleteUser removes the account; owned results, their items, and any
// live sessions go with it via ON DELETE CASCADE.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", translate(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListUsersByType(ctx context.Context, userType models.UserType) ([]*models.User, error) {
	query := `SELECT id, name, email, roll_no, image, user_type, created_at, updated_at
			  FROM users WHERE user_type = $1 ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, userType)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.RollNo,
			&user.Image, &user.UserType, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
