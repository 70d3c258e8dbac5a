package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const saltSize = 16

// deriveKey stretches a password into a 32-byte secretbox key with argon2id.
func deriveKey(password, salt []byte) *[32]byte {
	key := new([32]byte)
	copy(key[:], argon2.IDKey(password, salt, 1, 64*1024, 4, 32))
	return key
}

// EncryptWithPassword serializes v to JSON and seals it under a key derived
// from the password with a fresh random salt. The output is
// base64(salt || nonce || ciphertext).
//
// This path is independent of the installation key pair. Unlike the browser
// original it is authenticated, so a wrong password fails cleanly on decrypt
// instead of yielding garbage.
func EncryptWithPassword(v any, password []byte) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize data: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := new([NonceSize]byte)
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := deriveKey(password, salt)
	defer common.WipeByteArray(key[:])

	out := make([]byte, 0, saltSize+NonceSize+len(plaintext)+secretbox.Overhead)
	out = append(out, salt...)
	out = append(out, nonce[:]...)
	out = secretbox.Seal(out, plaintext, nonce, key)

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptWithPassword reverses EncryptWithPassword into v.
// A wrong password or tampered ciphertext yields common.ErrDecryptionFailed.
func DecryptWithPassword(encoded string, password []byte, v any) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("%w: not base64: %v", common.ErrMalformedState, err)
	}
	if len(raw) < saltSize+NonceSize+secretbox.Overhead {
		return fmt.Errorf("%w: ciphertext too short", common.ErrMalformedState)
	}

	salt := raw[:saltSize]
	nonce := new([NonceSize]byte)
	copy(nonce[:], raw[saltSize:saltSize+NonceSize])

	key := deriveKey(password, salt)
	defer common.WipeByteArray(key[:])

	plaintext, ok := secretbox.Open(nil, raw[saltSize+NonceSize:], nonce, key)
	if !ok {
		return common.ErrDecryptionFailed
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("failed to parse decrypted data: %w", err)
	}
	return nil
}
