// Package keysource loads the deployment's single 256-bit master key.
//
// The key is resolved once, from a key file or an inline hex value, and held
// for the life of the process inside a memguard enclave so that it is
// encrypted while resident and never swapped to disk.
package keysource

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// KeyLength is the required master key size in bytes (AES-256).
const KeyLength = 32

// Key is a loaded master key. Its bytes are only reachable through Use.
type Key struct {
	enclave *memguard.Enclave
}

// Use decrypts the key into locked memory, passes it to fn and wipes it
// when fn returns. fn must not retain the slice.
func (k *Key) Use(fn func(key []byte) error) error {
	buf, err := k.enclave.Open()
	if err != nil {
		return common.Wrap(common.ErrKeyUnavailable, err)
	}
	defer buf.Destroy()
	return fn(buf.Bytes())
}

// Matches reports whether text is the key itself, either as raw bytes or in
// its hex form (case-insensitive, surrounding whitespace ignored).
func (k *Key) Matches(text string) bool {
	var match bool
	_ = k.Use(func(key []byte) error {
		match = subtle.ConstantTimeCompare(key, []byte(text)) == 1 ||
			subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), []byte(strings.ToLower(strings.TrimSpace(text)))) == 1
		return nil
	})
	return match
}

// Source resolves the master key. The zero value is not usable; build one
// with New or NewStatic.
type Source struct {
	filePath string
	inline   string
	logger   logging.Logger
	readFile func(path string) (string, error)

	mu  sync.RWMutex
	key *Key
}

// New returns a Source that tries filePath first and the inline hex value
// second. Either may be empty.
func New(filePath, inline string, logger logging.Logger) *Source {
	return &Source{
		filePath: filePath,
		inline:   inline,
		logger:   logger.With("module", "keysource"),
		readFile: filex.ReadTrimmed,
	}
}

// NewStatic returns a Source around an explicit key. A raw key of the wrong
// length yields a Source that reports the key as absent. raw is copied and
// left untouched.
func NewStatic(raw []byte) *Source {
	s := &Source{logger: logging.Nop{}}
	if len(raw) == KeyLength {
		b := make([]byte, KeyLength)
		copy(b, raw)
		s.key = &Key{enclave: memguard.NewEnclave(b)}
	}
	return s
}

// Load returns the master key, or false when no configured source yields a
// valid 32-byte key. The first successful result is cached and the sources
// are not read again; failures are not cached.
func (s *Source) Load() (*Key, bool) {
	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()
	if key != nil {
		return key, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key != nil {
		return s.key, true
	}

	raw, ok := s.resolve()
	if !ok {
		return nil, false
	}
	s.key = &Key{enclave: memguard.NewEnclave(raw)}
	return s.key, true
}

// Validate reports whether a usable key is available. It is meant to be
// called once at startup, which must abort when it returns false.
func (s *Source) Validate() bool {
	_, ok := s.Load()
	return ok
}

func (s *Source) resolve() ([]byte, bool) {
	ctx := context.Background()

	if s.filePath != "" && s.readFile != nil {
		text, err := s.readFile(s.filePath)
		if err != nil {
			s.logger.Warn(ctx, "failed to read master key file", "path", s.filePath, "error", err.Error())
		} else if raw, ok := s.decode(ctx, text, "file"); ok {
			s.logger.Info(ctx, "master key loaded", "source", "file")
			return raw, true
		}
	}

	if s.inline != "" {
		if raw, ok := s.decode(ctx, s.inline, "inline"); ok {
			s.logger.Info(ctx, "master key loaded", "source", "inline")
			return raw, true
		}
	}

	return nil, false
}

// decode never logs the input, only its problem.
func (s *Source) decode(ctx context.Context, text, origin string) ([]byte, bool) {
	raw, err := hex.DecodeString(text)
	if err != nil {
		s.logger.Warn(ctx, "master key is not valid hex", "source", origin)
		return nil, false
	}
	if len(raw) != KeyLength {
		common.WipeByteArray(raw)
		s.logger.Warn(ctx, "master key has wrong length", "source", origin, "bytes", len(raw), "expected", KeyLength)
		return nil, false
	}
	return raw, true
}
