package service

import "errors"

var (
	// ErrEmailNotShaped is returned when a submitted email does not look
	// like an email address.
	ErrEmailNotShaped = errors.New("email address is not shaped like an email")

	// ErrPasswordsDoNotMatch is returned when the password and its
	// verification field differ.
	ErrPasswordsDoNotMatch = errors.New("password and verification do not match")

	// ErrInvalidCredentials is returned for any failed login: unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoActiveSession is returned when a session token is unknown or
	// expired.
	ErrNoActiveSession = errors.New("no active session")
)
