package store

import (
	"context"
	"fmt"
	"strings"

	"ciphertoy/internal/domain"
)

// FileDictionary reads candidate keys from a newline-delimited file, such as
// a password corpus. The file may be zstd or xz compressed.
type FileDictionary struct {
	path string
}

// NewFileDictionary returns a dictionary backed by path.
func NewFileDictionary(path string) *FileDictionary { return &FileDictionary{path: path} }

// Path returns the backing file path.
func (d *FileDictionary) Path() string { return d.path }

// LoadKeys reads the first limit keys. An unset path is a missing resource.
func (d *FileDictionary) LoadKeys(ctx context.Context, limit int) ([]string, error) {
	if strings.TrimSpace(d.path) == "" {
		return nil, fmt.Errorf("%w: no dictionary configured", domain.ErrMissingResource)
	}
	keys, err := ReadLines(ctx, d.path, limit)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return keys, nil
}

var _ domain.DictionarySource = (*FileDictionary)(nil)
