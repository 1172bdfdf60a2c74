package store

import (
	"context"
	"fmt"

	"ciphertoy/internal/score"
)

// LoadWordlist reads a scoring wordlist from path. An empty path selects the
// embedded default list.
func LoadWordlist(ctx context.Context, path string) (*score.Wordlist, error) {
	if path == "" {
		return score.DefaultWordlist(), nil
	}
	lines, err := ReadLines(ctx, path, 0)
	if err != nil {
		return nil, fmt.Errorf("load wordlist: %w", err)
	}
	return score.NewWordlist(lines), nil
}
