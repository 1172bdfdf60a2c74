package bruteforce

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ciphertoy/internal/cipher"
	"ciphertoy/internal/domain"
)

// sweepDictionary decodes msg with every key in chunks, one errgroup task per
// chunk. Tasks fill their own slot and never share a collection.
func (s *Service) sweepDictionary(
	ctx context.Context,
	kind domain.Kind,
	msg string,
	chunks [][]string,
	m *meter,
) ([]domain.Candidate, int, error) {
	slots := make([][]domain.Candidate, len(chunks))
	skipped := make([]int, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, keys := range chunks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			local := make([]domain.Candidate, 0, len(keys))
			for _, key := range keys {
				text, err := decodeWithKey(kind, msg, key)
				if err != nil {
					skipped[i]++
					continue
				}
				local = append(local, domain.Candidate{
					Score: s.scorer.Score(text),
					Text:  text,
					Label: kind.Label() + " - " + key,
				})
			}
			slots[i] = local
			m.advance(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total, nSkipped := 0, 0
	for i := range slots {
		total += len(slots[i])
		nSkipped += skipped[i]
	}
	out := make([]domain.Candidate, 0, total)
	for _, slot := range slots {
		out = append(out, slot...)
	}
	return out, nSkipped, nil
}

func decodeWithKey(kind domain.Kind, msg, key string) (string, error) {
	switch kind {
	case domain.KindVigenere:
		return cipher.Vigenere(msg, key, domain.Decrypt)
	case domain.KindBeaufort:
		return cipher.Beaufort(msg, key, domain.Decrypt)
	case domain.KindAutokey:
		return cipher.Autokey(msg, key, domain.Decrypt)
	case domain.KindSimpleSub:
		return cipher.SimpleSub(msg, key, domain.Decrypt)
	case domain.KindColumnar:
		return cipher.Columnar(msg, key, domain.Decrypt)
	}
	return "", fmt.Errorf("%s is not a dictionary cipher", kind)
}

// chunk splits keys into consecutive slices of at most size entries.
func chunk(keys []string, size int) [][]string {
	if len(keys) == 0 {
		return nil
	}
	out := make([][]string, 0, (len(keys)+size-1)/size)
	for start := 0; start < len(keys); start += size {
		out = append(out, keys[start:min(start+size, len(keys))])
	}
	return out
}
