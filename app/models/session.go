package models

import "time"

// Session binds an opaque token (the row ID) to a logged-in user for the
// duration of a browser session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
