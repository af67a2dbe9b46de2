package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    UserType
		wantErr bool
	}{
		{name: "student", input: "student", want: UserTypeStudent},
		{name: "admin", input: "admin", want: UserTypeAdmin},
		{name: "empty defaults to student", input: "", want: UserTypeStudent},
		{name: "unknown rejected", input: "teacher", wantErr: true},
		{name: "case sensitive", input: "Admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{UserType: UserTypeAdmin}).IsAdmin())
	assert.False(t, (&User{UserType: UserTypeStudent}).IsAdmin())
}
