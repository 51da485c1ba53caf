// Package filex holds file helpers for secret-bearing files: the master key
// file and the audit log.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OpenAppend opens path for appending, creating it with 0600 permissions and
// its parent directory with 0700 when missing.
func OpenAppend(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// ReadTrimmed returns the file contents with surrounding whitespace removed.
// Key files written by editors or `echo` usually end in a newline.
func ReadTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
