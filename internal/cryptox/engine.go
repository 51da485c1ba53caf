// Package cryptox holds the server's cryptographic primitives: authenticated
// encryption of secret fields under the master key and password hashing.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/server/keysource"
)

const (
	// NonceSize is the GCM nonce length in bytes.
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16
)

// KeyLoader yields the master key, or false when none is configured.
type KeyLoader interface {
	Load() (*keysource.Key, bool)
}

// Sealed is the output of one encryption: the ciphertext and the nonce and
// tag needed to open it. All three are persisted as separate columns.
type Sealed struct {
	Ciphertext []byte
	Nonce      []byte
	Tag        []byte
}

// Engine encrypts and decrypts field values with AES-256-GCM. It is safe for
// concurrent use.
type Engine struct {
	keys KeyLoader
}

func NewEngine(keys KeyLoader) *Engine {
	return &Engine{keys: keys}
}

// Available reports whether the master key can be loaded.
func (e *Engine) Available() bool {
	_, ok := e.keys.Load()
	return ok
}

// Encrypt seals plaintext under the master key.
//
// A fresh random 12-byte nonce is drawn for every call, so encrypting the same
// plaintext twice yields different ciphertexts. The output ciphertext has the
// same length as plaintext; the 16-byte tag is returned separately.
//
// Returns common.ErrKeyUnavailable when no master key is configured.
func (e *Engine) Encrypt(plaintext []byte) (*Sealed, error) {
	key, ok := e.keys.Load()
	if !ok {
		return nil, common.ErrKeyUnavailable
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, common.Wrap(common.ErrInternal, err)
	}

	var sealed []byte
	err := key.Use(func(k []byte) error {
		aead, err := newGCM(k)
		if err != nil {
			return err
		}
		sealed = aead.Seal(nil, nonce, plaintext, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	split := len(sealed) - TagSize
	return &Sealed{
		Ciphertext: sealed[:split:split],
		Nonce:      nonce,
		Tag:        sealed[split:],
	}, nil
}

// Decrypt verifies and opens s.
//
// Returns common.ErrKeyUnavailable when no master key is configured and
// common.ErrAuthenticationFailed when the nonce or tag is malformed or when
// any of ciphertext, nonce or tag has been altered.
func (e *Engine) Decrypt(s *Sealed) ([]byte, error) {
	key, ok := e.keys.Load()
	if !ok {
		return nil, common.ErrKeyUnavailable
	}
	if s == nil || len(s.Nonce) != NonceSize || len(s.Tag) != TagSize {
		return nil, common.ErrAuthenticationFailed
	}

	// GCM expects ciphertext||tag; build it fresh so the caller's slices
	// are never appended to.
	in := make([]byte, 0, len(s.Ciphertext)+TagSize)
	in = append(in, s.Ciphertext...)
	in = append(in, s.Tag...)

	var plaintext []byte
	err := key.Use(func(k []byte) error {
		aead, err := newGCM(k)
		if err != nil {
			return err
		}
		plaintext, err = aead.Open(nil, s.Nonce, in, nil)
		if err != nil {
			return common.Wrap(common.ErrAuthenticationFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.Wrap(common.ErrInternal, err)
	}
	return aead, nil
}

// GenerateMasterKey returns a new random master key as 64 hex characters,
// suitable for MASTER_KEY or a key file.
func GenerateMasterKey() (string, error) {
	return common.MakeRandHexString(keysource.KeyLength)
}
