package models

import "fmt"

// UserType defines the possible account types.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeAdmin   UserType = "admin"
)

// ParseUserType converts a raw string into a UserType. An empty string
// defaults to student, matching the signup form's behavior.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeStudent, "":
		return UserTypeStudent, nil
	case UserTypeAdmin:
		return UserTypeAdmin, nil
	default:
		return "", fmt.Errorf("unknown user type %q", s)
	}
}

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeStudent || t == UserTypeAdmin
}
