package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RollNo    string    `json:"roll_no"`
	Password  string    `json:"-"`
	Image     string    `json:"image,omitempty"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin account type.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}
