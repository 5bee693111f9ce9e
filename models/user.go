package models

import "time"

// User represents a registered author account.
// The password is stored only as a bcrypt hash; the plaintext never leaves
// the registration or login handler.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on creation.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the user. It is also the
	// identity stored in the session once the user authenticates.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
