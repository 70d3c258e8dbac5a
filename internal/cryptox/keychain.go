// Package cryptox implements the vault's encryption helper: a persisted
// per-installation key pair with authenticated public-key encryption
// (NaCl box), a password-based symmetric path and detached signatures.
package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/dmitrijs2005/thesisvault/internal/filex"
	"github.com/dmitrijs2005/thesisvault/internal/models"
	"golang.org/x/crypto/nacl/box"
)

// NonceSize is the NaCl box nonce length. A fresh random nonce is drawn for
// every encryption; reusing a nonce under the same key pair breaks the
// primitive's security guarantees.
const NonceSize = 24

// Envelope is the result of a public-key encryption: the ciphertext, the
// one-time nonce and the sender's public key the recipient needs to open it.
type Envelope struct {
	Ciphertext      []byte `json:"ciphertext"`
	Nonce           []byte `json:"nonce"`
	SenderPublicKey []byte `json:"sender_public_key"`
}

// Keychain manages the installation's key pair, persisted base64-encoded in
// a single file. Construct one per data directory and inject it; it is safe
// for concurrent use.
//
// The identity is tied to the installation, not to a user account, and
// regenerating it invalidates all previously encrypted data.
type Keychain struct {
	mu     sync.Mutex
	path   string
	pair   *models.KeyPair
	secret *[32]byte
	shared map[string]*[32]byte // precomputed per-recipient keys
	loaded bool
}

// NewKeychain returns a Keychain bound to the given file path. The key pair
// is loaded lazily on first use.
func NewKeychain(path string) *Keychain {
	return &Keychain{path: path, shared: make(map[string]*[32]byte)}
}

// Generate draws a fresh box pair and signing pair, persists them
// (overwriting any existing identity) and returns the new pair.
func (k *Keychain) Generate() (*models.KeyPair, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	pub, sec, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate box keys: %w", err)
	}
	signPub, signSec, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}

	pair := &models.KeyPair{
		PublicKey:     pub[:],
		SecretKey:     sec[:],
		SignPublicKey: signPub,
		SignSecretKey: signSec,
	}

	if err := k.persist(pair); err != nil {
		return nil, err
	}

	k.pair = pair
	k.secret = sec
	k.shared = make(map[string]*[32]byte)
	k.loaded = true
	return pair, nil
}

func (k *Keychain) persist(pair *models.KeyPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to serialize key pair: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	if err := filex.WriteFileAtomic(k.path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("failed to persist key pair: %w", err)
	}
	return nil
}

// load reads and validates the persisted pair. Callers must hold k.mu.
func (k *Keychain) load() error {
	if k.loaded {
		if k.pair == nil {
			return common.ErrNoKeyPair
		}
		return nil
	}

	raw, err := os.ReadFile(k.path)
	if errors.Is(err, os.ErrNotExist) {
		k.loaded = true
		return common.ErrNoKeyPair
	}
	if err != nil {
		return fmt.Errorf("failed to read keychain: %w", err)
	}

	data, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return fmt.Errorf("%w: keychain is not base64: %v", common.ErrMalformedState, err)
	}

	pair := &models.KeyPair{}
	if err := json.Unmarshal(data, pair); err != nil {
		return fmt.Errorf("%w: keychain JSON: %v", common.ErrMalformedState, err)
	}
	if len(pair.PublicKey) != 32 || len(pair.SecretKey) != 32 ||
		len(pair.SignPublicKey) != ed25519.PublicKeySize ||
		len(pair.SignSecretKey) != ed25519.PrivateKeySize {
		return fmt.Errorf("%w: unexpected key sizes", common.ErrMalformedState)
	}

	k.pair = pair
	k.secret = new([32]byte)
	copy(k.secret[:], pair.SecretKey)
	k.loaded = true
	return nil
}

// PublicKey returns the base64-encoded box public key.
// Returns common.ErrNoKeyPair if no identity has been generated yet.
func (k *Keychain) PublicKey() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.load(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(k.pair.PublicKey), nil
}

// sharedKey returns the precomputed shared key for a base64 peer public key,
// computing and caching it on first use. Callers must hold k.mu.
func (k *Keychain) sharedKey(peerPublicKey string) (*[32]byte, error) {
	if err := k.load(); err != nil {
		return nil, err
	}

	if key, ok := k.shared[peerPublicKey]; ok {
		return key, nil
	}

	raw, err := base64.StdEncoding.DecodeString(peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("invalid peer public key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("invalid peer public key: got %d bytes, want 32", len(raw))
	}

	peer := new([32]byte)
	copy(peer[:], raw)

	key := new([32]byte)
	box.Precompute(key, peer, k.secret)
	k.shared[peerPublicKey] = key
	return key, nil
}

// EncryptBytes seals data for the holder of recipientPublicKey (base64).
// A fresh random nonce is drawn on every call.
func (k *Keychain) EncryptBytes(data []byte, recipientPublicKey string) (*Envelope, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	shared, err := k.sharedKey(recipientPublicKey)
	if err != nil {
		return nil, err
	}

	nonce := new([NonceSize]byte)
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := box.SealAfterPrecomputation(nil, data, nonce, shared)
	return &Envelope{
		Ciphertext:      ciphertext,
		Nonce:           nonce[:],
		SenderPublicKey: append([]byte(nil), k.pair.PublicKey...),
	}, nil
}

// DecryptBytes opens an envelope sealed by the holder of senderPublicKey
// (base64). Authentication failure, including any ciphertext tampering,
// yields common.ErrDecryptionFailed rather than garbage output.
func (k *Keychain) DecryptBytes(env *Envelope, senderPublicKey string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	shared, err := k.sharedKey(senderPublicKey)
	if err != nil {
		return nil, err
	}

	if len(env.Nonce) != NonceSize {
		return nil, fmt.Errorf("%w: bad nonce size", common.ErrDecryptionFailed)
	}
	nonce := new([NonceSize]byte)
	copy(nonce[:], env.Nonce)

	plaintext, ok := box.OpenAfterPrecomputation(nil, env.Ciphertext, nonce, shared)
	if !ok {
		return nil, common.ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptMessage is EncryptBytes over a UTF-8 string.
func (k *Keychain) EncryptMessage(plaintext, recipientPublicKey string) (*Envelope, error) {
	return k.EncryptBytes([]byte(plaintext), recipientPublicKey)
}

// DecryptMessage is DecryptBytes returning a UTF-8 string.
func (k *Keychain) DecryptMessage(env *Envelope, senderPublicKey string) (string, error) {
	data, err := k.DecryptBytes(env, senderPublicKey)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Clear wipes key material from memory, drops the cached shared keys and
// deletes the keychain file. Used on logout.
func (k *Keychain) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.pair != nil {
		common.WipeByteArray(k.pair.SecretKey)
		common.WipeByteArray(k.pair.SignSecretKey)
	}
	if k.secret != nil {
		common.WipeByteArray(k.secret[:])
	}
	for _, s := range k.shared {
		common.WipeByteArray(s[:])
	}

	k.pair = nil
	k.secret = nil
	k.shared = make(map[string]*[32]byte)
	k.loaded = true

	if err := os.Remove(k.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove keychain: %w", err)
	}
	return nil
}
