package models

// KeyPair is the per-installation encryption identity: one NaCl box pair for
// authenticated public-key encryption and one Ed25519 pair for detached
// signatures. It is persisted base64-encoded in the keychain file and
// regenerable on demand; regeneration invalidates everything encrypted for
// the previous identity, there is no rotation path.
type KeyPair struct {
	PublicKey []byte `json:"public_key"`
	SecretKey []byte `json:"secret_key"`

	SignPublicKey []byte `json:"sign_public_key"`
	SignSecretKey []byte `json:"sign_secret_key"`
}
