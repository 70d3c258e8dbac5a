package cryptox

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
)

// Signature is a detached Ed25519 signature together with the public key
// needed to verify it.
type Signature struct {
	Signature []byte `json:"signature"`
	PublicKey []byte `json:"public_key"`
}

// Sign produces a detached signature over the canonical JSON serialization
// of v using the installation's signing key.
func (k *Keychain) Sign(v any) (*Signature, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.load(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize data: %w", err)
	}

	sig := ed25519.Sign(ed25519.PrivateKey(k.pair.SignSecretKey), data)
	return &Signature{
		Signature: sig,
		PublicKey: append([]byte(nil), k.pair.SignPublicKey...),
	}, nil
}

// Verify reports whether sig is a valid detached signature over the
// canonical JSON serialization of v under publicKey. Every failure mode,
// malformed keys and serialization errors included, is reported as false:
// callers use the result in boolean gating logic.
func Verify(v any, sig, publicKey []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	data, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), data, sig)
}
