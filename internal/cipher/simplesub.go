package cipher

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"

	"ciphertoy/internal/domain"
)

// SimpleSub substitutes letters through an alphabet shuffled deterministically
// from seed, preserving case. The same seed yields the same alphabet on every
// run and platform.
func SimpleSub(msg, seed string, dir domain.Direction) (string, error) {
	if seed == "" {
		return "", domain.NewKeyError(domain.KindSimpleSub, "seed", "must not be empty")
	}
	table := shuffledAlphabet(seed)
	if dir == domain.Decrypt {
		var inv [26]int
		for i, v := range table {
			inv[v] = i
		}
		table = inv
	}
	return mapLetters(msg, func(x int) int { return table[x] }), nil
}

// shuffledAlphabet runs a Fisher-Yates shuffle of 0..25 driven by a ChaCha20
// keystream keyed with BLAKE2b-256(seed).
func shuffledAlphabet(seed string) [26]int {
	sum := blake2b.Sum256([]byte(seed))
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(sum[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	ks := &keystream{c: c, off: keystreamBlock}

	var alpha [26]int
	for i := range alpha {
		alpha[i] = i
	}
	for i := len(alpha) - 1; i > 0; i-- {
		j := ks.intn(i + 1)
		alpha[i], alpha[j] = alpha[j], alpha[i]
	}
	return alpha
}

const keystreamBlock = 64

// keystream reads uniform integers from a ChaCha20 keystream.
type keystream struct {
	c   *chacha20.Cipher
	buf [keystreamBlock]byte
	off int
}

func (k *keystream) uint32() uint32 {
	if k.off+4 > len(k.buf) {
		k.buf = [keystreamBlock]byte{}
		k.c.XORKeyStream(k.buf[:], k.buf[:])
		k.off = 0
	}
	b := k.buf[k.off : k.off+4]
	k.off += 4
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// intn returns a uniform value in [0, n) by rejecting the biased low range.
func (k *keystream) intn(n int) int {
	bound := uint32(n)
	threshold := -bound % bound
	for {
		if v := k.uint32(); v >= threshold {
			return int(v % bound)
		}
	}
}
