package cipher

import (
	"fmt"
	"strconv"
	"strings"

	"ciphertoy/internal/domain"
)

// Apply runs the kind transform over msg in direction dir.
//
// Empty messages are rejected before any cipher runs. Key problems come back
// as *domain.KeyError; undecodable input wraps domain.ErrMalformedInput.
func Apply(kind domain.Kind, msg string, key domain.Key, dir domain.Direction) (string, error) {
	if msg == "" {
		return "", domain.ErrEmptyMessage
	}
	switch kind {
	case domain.KindCaesar:
		return Caesar(msg, key.N, dir), nil
	case domain.KindVigenere:
		return Vigenere(msg, key.Text, dir)
	case domain.KindBeaufort:
		return Beaufort(msg, key.Text, dir)
	case domain.KindAutokey:
		return Autokey(msg, key.Text, dir)
	case domain.KindAtbash:
		return Atbash(msg), nil
	case domain.KindROT13:
		return ROT13(msg), nil
	case domain.KindAffine:
		return Affine(msg, key.A, key.B, dir)
	case domain.KindBaconian:
		return Baconian(msg, dir)
	case domain.KindRailfence:
		return Railfence(msg, key.N, dir)
	case domain.KindPolybius:
		return Polybius(msg, dir), nil
	case domain.KindSimpleSub:
		return SimpleSub(msg, key.Text, dir)
	case domain.KindColumnar:
		return Columnar(msg, key.Text, dir)
	case domain.KindBase64:
		return Base64(msg, dir)
	}
	return "", fmt.Errorf("unknown cipher kind %d", int(kind))
}

// ParseKey converts key text into key material for kind:
// an integer for Caesar and Railfence, "a,b" for Affine, the raw text for
// keyed ciphers. Keyless ciphers ignore raw.
func ParseKey(kind domain.Kind, raw string) (domain.Key, error) {
	switch kind {
	case domain.KindCaesar:
		n, err := parseInt(kind, "shift", raw)
		return domain.ShiftKey(n), err
	case domain.KindRailfence:
		n, err := parseInt(kind, "rails", raw)
		return domain.ShiftKey(n), err
	case domain.KindAffine:
		parts := strings.Split(raw, ",")
		if len(parts) != 2 {
			return domain.Key{}, domain.NewKeyError(kind, "a,b", fmt.Sprintf("want two integers separated by a comma, got %q", raw))
		}
		a, err := parseInt(kind, "a", parts[0])
		if err != nil {
			return domain.Key{}, err
		}
		b, err := parseInt(kind, "b", parts[1])
		if err != nil {
			return domain.Key{}, err
		}
		return domain.AffineKey(a, b), nil
	case domain.KindVigenere, domain.KindBeaufort, domain.KindAutokey,
		domain.KindSimpleSub, domain.KindColumnar:
		if raw == "" {
			return domain.Key{}, domain.NewKeyError(kind, "key", "must not be empty")
		}
		return domain.TextKey(raw), nil
	case domain.KindAtbash, domain.KindROT13, domain.KindBaconian,
		domain.KindPolybius, domain.KindBase64:
		return domain.Key{}, nil
	}
	return domain.Key{}, fmt.Errorf("unknown cipher kind %d", int(kind))
}

// NeedsKey reports whether kind takes key material.
func NeedsKey(kind domain.Kind) bool {
	switch kind {
	case domain.KindAtbash, domain.KindROT13, domain.KindBaconian,
		domain.KindPolybius, domain.KindBase64:
		return false
	}
	return true
}

func parseInt(kind domain.Kind, param, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewKeyError(kind, param, fmt.Sprintf("%q is not an integer", strings.TrimSpace(raw)))
	}
	return n, nil
}
