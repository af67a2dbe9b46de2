package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chirag-c499/result-menegment-system/app/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{
		ID:       "6b4a9c1e-0000-4000-8000-000000000001",
		Email:    "student@example.com",
		UserType: models.UserTypeStudent,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserTypeStudent, claims.UserType)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	user := &models.User{ID: "abc", Email: "a@b.c", UserType: models.UserTypeAdmin}
	token, err := GenerateJWT(user)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}
