package bruteforce

import (
	"context"
	"errors"
	"fmt"

	"ciphertoy/internal/cipher"
	"ciphertoy/internal/domain"
)

const (
	maxCaesarShift = 80
	maxAffineParam = 26
)

// sweepBounded decodes msg with every parameter in kind's closed range and
// scores each attempt. Keys the cipher rejects are counted as skipped.
func (s *Service) sweepBounded(ctx context.Context, kind domain.Kind, msg string) ([]domain.Candidate, int, error) {
	var (
		out     []domain.Candidate
		skipped int
	)
	add := func(text, label string) {
		out = append(out, domain.Candidate{Score: s.scorer.Score(text), Text: text, Label: label})
	}

	switch kind {
	case domain.KindCaesar:
		for shift := 1; shift <= maxCaesarShift; shift++ {
			add(cipher.Caesar(msg, shift, domain.Decrypt), fmt.Sprintf("%s[%d]", kind.Label(), shift))
		}
	case domain.KindAtbash:
		add(cipher.Atbash(msg), kind.Label())
	case domain.KindROT13:
		add(cipher.ROT13(msg), kind.Label())
	case domain.KindPolybius:
		add(cipher.Polybius(msg, domain.Decrypt), kind.Label())
	case domain.KindAffine:
		for a := 0; a <= maxAffineParam; a++ {
			for b := 0; b <= maxAffineParam; b++ {
				text, err := cipher.Affine(msg, a, b, domain.Decrypt)
				if errors.Is(err, domain.ErrInvalidKey) {
					skipped++
					continue
				}
				if err != nil {
					return nil, skipped, err
				}
				add(text, fmt.Sprintf("%s[a=%d,b=%d]", kind.Label(), a, b))
			}
		}
	case domain.KindBaconian:
		text, err := cipher.BaconianDecode(msg)
		if err != nil {
			return nil, 0, err
		}
		add(text, kind.Label())
	case domain.KindRailfence:
		n := len([]rune(msg))
		if n < 2 {
			return nil, 0, domain.NewKeyError(kind, "rails", "message too short for two rails")
		}
		for rails := 2; rails <= n; rails++ {
			if err := ctx.Err(); err != nil {
				return nil, skipped, err
			}
			text, err := cipher.Railfence(msg, rails, domain.Decrypt)
			if err != nil {
				return nil, skipped, err
			}
			add(text, fmt.Sprintf("%s[%d]", kind.Label(), rails))
		}
	case domain.KindBase64:
		text, err := cipher.Base64(msg, domain.Decrypt)
		if err != nil {
			return nil, 0, err
		}
		add(text, kind.Label())
	case domain.KindVigenere, domain.KindBeaufort, domain.KindAutokey,
		domain.KindSimpleSub, domain.KindColumnar:
		return nil, 0, fmt.Errorf("%s is a dictionary cipher", kind)
	}
	return out, skipped, nil
}
