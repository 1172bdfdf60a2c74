package cipher

import (
	"fmt"

	"ciphertoy/internal/domain"
)

// Autokey encrypts with the running key key ++ plaintext. Rune i is shifted by
// runningKey[i] - 'a' only when runningKey[i] is an ASCII letter; otherwise it
// passes through unchanged.
func Autokey(msg, key string, dir domain.Direction) (string, error) {
	if key == "" {
		return "", domain.NewKeyError(domain.KindAutokey, "key", "must not be empty")
	}
	seed := []rune(key)
	for _, c := range seed {
		if c > 0x7f {
			return "", domain.NewKeyError(domain.KindAutokey, "key", fmt.Sprintf("non-ASCII rune %q", c))
		}
	}
	in := []rune(msg)
	if dir == domain.Decrypt {
		return string(autokeyDecrypt(in, seed)), nil
	}
	running := append(append(make([]rune, 0, len(seed)+len(in)), seed...), in...)
	out := make([]rune, len(in))
	for i, c := range in {
		out[i] = autokeyStep(c, running[i], 1)
	}
	return string(out), nil
}

// autokeyDecrypt recovers one key-length block at a time: the key for block n
// is the plaintext recovered from block n-1.
func autokeyDecrypt(in, seed []rune) []rune {
	n := len(seed)
	running := append(make([]rune, 0, n+len(in)), seed...)
	plain := make([]rune, 0, len(in))
	for start := 0; start < len(in); start += n {
		end := min(start+n, len(in))
		for j, c := range in[start:end] {
			plain = append(plain, autokeyStep(c, running[start+j], -1))
		}
		running = append(running, plain[start:end]...)
	}
	return plain
}

func autokeyStep(c, k rune, sign int) rune {
	if !isLetter(k) {
		return c
	}
	return Shift(c, sign*int(toLower(k)-'a'))
}
