// Package service declares the outbound ports the use cases depend on.
package service

import "holocron/internal/errors"

// ErrPasswordTooLong is returned by Hash when the password exceeds what the algorithm can encode.
var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher produces the hash stored on a user row. Plaintext passwords are never persisted.
type PasswordHasher interface {
	// Hash returns a salted hash of password, or ErrPasswordTooLong.
	Hash(password string) (string, error)
}
