package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

// Session queries back the default SessionStore. The row ID is the
// opaque token handed to the client.

func (s *Store) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	query := `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, token, userID, time.Now().Add(ttl)); err != nil {
		return "", fmt.Errorf("failed to create session: %w", translate(err))
	}
	return token, nil
}

// SessionUserID resolves a token to its bound user ID. Expired bindings
// are treated the same as missing ones.
func (s *Store) SessionUserID(ctx context.Context, token string) (string, error) {
	session, err := s.GetSessionByID(ctx, token)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

func (s *Store) GetSessionByID(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at
			  FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return session, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
