package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	token, err := store.CreateSession(ctx, "user-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.SessionUserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// Tokens are unique per login.
	second, err := store.CreateSession(ctx, "user-1", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, token, second)

	require.NoError(t, store.DeleteSession(ctx, token))
	_, err = store.SessionUserID(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// The other session is untouched.
	_, err = store.SessionUserID(ctx, second)
	assert.NoError(t, err)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	token, err := store.CreateSession(ctx, "user-1", -time.Minute)
	require.NoError(t, err)

	_, err = store.SessionUserID(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemorySessionStoreUnknownToken(t *testing.T) {
	store := NewMemorySessionStore()
	_, err := store.SessionUserID(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrNoSession)
}
