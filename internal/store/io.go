package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"ciphertoy/internal/domain"
)

// openText opens path for reading, transparently decompressing .zst and .xz
// files. A missing file wraps domain.ErrMissingResource.
func openText(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingResource, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingResource, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open zstd %s: %w", path, err)
		}
		return &stackedReader{Reader: dec, close: func() error { dec.Close(); return f.Close() }}, nil
	case ".xz":
		dec, err := xz.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open xz %s: %w", path, err)
		}
		return &stackedReader{Reader: dec, close: f.Close}, nil
	}
	return f, nil
}

// stackedReader closes a decompressor together with its underlying file.
type stackedReader struct {
	io.Reader
	close func() error
}

func (r *stackedReader) Close() error { return r.close() }

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
