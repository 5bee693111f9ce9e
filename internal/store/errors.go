// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists in the
	// database. The unique constraint on users.email is the backstop behind
	// the service-level uniqueness check.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBlogNotFound is returned when a single-post lookup targets an
	// identifier that does not resolve to a stored post.
	ErrBlogNotFound = errors.New("blog post was not found")

	// ErrSessionNotFound is returned when a session token does not resolve
	// to a live (non-expired) session row.
	ErrSessionNotFound = errors.New("session was not found")
)
