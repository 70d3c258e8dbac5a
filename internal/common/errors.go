// Package common defines shared constants and sentinel errors used across
// thesisvault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Keychain errors.
	ErrNoKeyPair        = errors.New("no key pair")
	ErrDecryptionFailed = errors.New("decryption failed")

	// Persisted-state errors (malformed JSON in the keychain or journal files).
	ErrMalformedState = errors.New("malformed persisted state")
)
