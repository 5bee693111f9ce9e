// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// HTTP response writing, and session token generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionEmailCtxKey is the key under which the session gate stores the
// authenticated user's email in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionEmailCtxKey, "user@x.com")
var SessionEmailCtxKey = contextKey("sessionEmail")

// GetSessionEmailFromContext retrieves the authenticated email from the context.
//
// Returns the email and an ok flag:
//   - ok == true  — a session gate ran earlier and stored a non-empty identity
//   - ok == false — the request is anonymous or the value has the wrong type
func GetSessionEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(SessionEmailCtxKey).(string)
	if email == "" {
		return "", false
	}
	return email, ok
}
