// Package validators holds the field-level validation rules applied to
// registration and post submissions before any data is persisted.
//
// The rules are deliberately structural, not semantic: the email check in
// particular accepts anything with an '@' followed later by a '.', matching
// the behaviour the rest of the system (and its tests) depend on. Do not
// tighten it.
package validators

import "strings"

// IsEmailShaped reports whether s is shaped like an email address: it must
// contain an '@' character with a '.' character somewhere after it.
// "a@b.com" passes; "abc" and "a.com@" do not.
func IsEmailShaped(s string) bool {
	at := strings.Index(s, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(s[at:], ".")
}

// PasswordsMatch reports whether the password and its verification field are
// exactly equal.
func PasswordsMatch(password, verify string) bool {
	return password == verify
}

// ValidateNewPost checks the required fields of a post submission.
// It returns ErrEmptyTitle or ErrEmptyBody on the first missing field,
// or nil when both are present.
func ValidateNewPost(title, body string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if body == "" {
		return ErrEmptyBody
	}
	return nil
}
