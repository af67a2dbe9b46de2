package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil passes through", in: nil, want: nil},
		{name: "no rows becomes not found", in: sql.ErrNoRows, want: ErrNotFound},
		{name: "unique violation becomes conflict", in: &pq.Error{Code: codeUniqueViolation}, want: ErrConflict},
		{name: "fk violation becomes bad reference", in: &pq.Error{Code: codeForeignKeyViolation}, want: ErrBadReference},
		{name: "malformed uuid becomes not found", in: &pq.Error{Code: codeInvalidTextRep}, want: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate(tt.in))
		})
	}
}

func TestTranslateKeepsUnknownErrors(t *testing.T) {
	underlying := errors.New("connection reset")
	assert.Equal(t, underlying, translate(underlying))
}

func TestTranslatedErrorsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("failed to create user: %w", translate(&pq.Error{Code: codeUniqueViolation}))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}
