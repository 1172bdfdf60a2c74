package cipher

import (
	"fmt"

	"ciphertoy/internal/domain"
)

// keyShifts converts a key string into per-position shift amounts.
// Letters fold to lowercase and contribute 0..25; other ASCII runes contribute
// their distance from 'a'. Empty or non-ASCII keys are rejected rather than
// replaced with a default.
func keyShifts(kind domain.Kind, key string) ([]int, error) {
	if key == "" {
		return nil, domain.NewKeyError(kind, "key", "must not be empty")
	}
	shifts := make([]int, 0, len(key))
	for _, c := range key {
		if c > 0x7f {
			return nil, domain.NewKeyError(kind, "key", fmt.Sprintf("non-ASCII rune %q", c))
		}
		shifts = append(shifts, int(toLower(c)-'a'))
	}
	return shifts, nil
}

// Vigenere shifts rune i of msg by key[i mod len(key)] - 'a' within the
// printable band. The key cursor advances on every rune, shifted or not.
func Vigenere(msg, key string, dir domain.Direction) (string, error) {
	shifts, err := keyShifts(domain.KindVigenere, key)
	if err != nil {
		return "", err
	}
	return vigenere(msg, shifts, dir), nil
}

// Beaufort is Vigenere keyed with the Atbash mirror of key.
func Beaufort(msg, key string, dir domain.Direction) (string, error) {
	shifts, err := keyShifts(domain.KindBeaufort, Atbash(key))
	if err != nil {
		return "", err
	}
	return vigenere(msg, shifts, dir), nil
}

func vigenere(msg string, shifts []int, dir domain.Direction) string {
	sign := 1
	if dir == domain.Decrypt {
		sign = -1
	}
	out := []rune(msg)
	for i, c := range out {
		out[i] = Shift(c, sign*shifts[i%len(shifts)])
	}
	return string(out)
}
