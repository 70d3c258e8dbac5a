package cryptox

import (
	"testing"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	k := newKeychain(t)
	_, err := k.Generate()
	require.NoError(t, err)

	doc := map[string]any{"title": "chapter 3", "version": 2}

	sig, err := k.Sign(doc)
	require.NoError(t, err)

	assert.True(t, Verify(doc, sig.Signature, sig.PublicKey))
}

func TestVerify_FailuresAreBooleans(t *testing.T) {
	k := newKeychain(t)
	_, err := k.Generate()
	require.NoError(t, err)

	sig, err := k.Sign("payload")
	require.NoError(t, err)

	// different data
	assert.False(t, Verify("other payload", sig.Signature, sig.PublicKey))

	// corrupted signature
	bad := append([]byte(nil), sig.Signature...)
	bad[0] ^= 0x01
	assert.False(t, Verify("payload", bad, sig.PublicKey))

	// wrong key sizes never panic, just fail
	assert.False(t, Verify("payload", sig.Signature, []byte("short")))
	assert.False(t, Verify("payload", []byte("short"), sig.PublicKey))

	// unserializable data
	assert.False(t, Verify(func() {}, sig.Signature, sig.PublicKey))
}

func TestSign_NoKeyPair(t *testing.T) {
	k := newKeychain(t)

	_, err := k.Sign("payload")
	assert.ErrorIs(t, err, common.ErrNoKeyPair)
}
