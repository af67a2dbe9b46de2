package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// SessionTTL is how long a login stays valid without re-authenticating.
const SessionTTL = 24 * time.Hour

// ErrNoSession is returned by session stores when a token has no live
// binding, either because it never existed or because it expired.
var ErrNoSession = errors.New("no active session")

// SessionStore binds opaque tokens to user IDs. The Postgres-backed
// implementation lives in the database package; a Redis one is in
// sessions_redis.go. Stores are injected into the Guard, never reached
// through a package global.
type SessionStore interface {
	CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error)
	SessionUserID(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// MemorySessionStore keeps sessions in-process. Suitable for tests and
// single-node development; state is lost on restart.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (m *MemorySessionStore) CreateSession(_ context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return token, nil
}

func (m *MemorySessionStore) SessionUserID(_ context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return "", ErrNoSession
	}
	if time.Now().After(session.expiresAt) {
		delete(m.sessions, token)
		return "", ErrNoSession
	}
	return session.userID, nil
}

func (m *MemorySessionStore) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}
