package models

import "time"

// Session associates an opaque token, handed to the client in a cookie, with
// an authenticated identity. The identity is a single field: the user's
// email. Sessions are created on login or registration and destroyed on
// logout or expiry.
type Session struct {
	// Token is the opaque session identifier (UUID). It is the only value
	// the client ever holds.
	Token string `json:"-"`

	// Email is the authenticated user's email, the sole identity field
	// persisted for a session.
	Email string `json:"email"`

	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the session stops being honoured. Expired rows are
	// treated as absent and are removed by the janitor worker.
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session has passed its expiry instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
