package store

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const (
	maxLineBytes = 1 << 20
	// ctxCheckEvery is how many lines are read between cancellation checks.
	ctxCheckEvery = 4096
)

// ReadLines returns up to limit lines of the file at path, in order, with
// trailing carriage returns removed. A limit of zero or less reads every line.
func ReadLines(ctx context.Context, path string, limit int) ([]string, error) {
	rc, err := openText(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var lines []string
	if limit > 0 {
		lines = make([]string, 0, min(limit, 1<<16))
	}
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if limit > 0 && len(lines) >= limit {
			break
		}
		if len(lines)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
