package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash of the given plaintext password.
// bcrypt generates an unpredictable salt on every call, so hashing the same
// password twice never yields the same record.
//
// Parameters:
//
//	password - the plaintext password to hash
//
// Returns:
//
//	string - the bcrypt hash record (salt embedded)
//	error  - non-nil if bcrypt rejects the input (e.g. longer than 72 bytes)
//
// Example usage:
//
//	record, err := utils.HashPassword("pw123")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash record.
//
// Verification fails closed: a malformed or truncated hash record yields
// false, never a panic or an error surfaced to the caller.
//
// Parameters:
//
//	password   - the plaintext candidate
//	hashRecord - the stored bcrypt hash to verify against
//
// Returns:
//
//	bool - true only on an exact match
func VerifyPassword(password, hashRecord string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashRecord), []byte(password)) == nil
}
