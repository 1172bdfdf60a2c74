package cipher

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"ciphertoy/internal/domain"
)

const (
	baconBits      = 5
	baconThreshold = 7 // digits >= 7 read as 1
)

// Baconian encodes letters as five binary digits rendered as random decimal
// digits (0..6 for 0, 7..9 for 1). Encryption is
// non-deterministic; decryption relies only on the threshold.
func Baconian(msg string, dir domain.Direction) (string, error) {
	if dir == domain.Decrypt {
		return BaconianDecode(msg)
	}
	return BaconianEncode(msg, rand.IntN)
}

// BaconianEncode encodes msg drawing digits from intn, which must return a
// value in [0, n). Case is not preserved. Whitespace passes through; any
// other non-letter is rejected.
func BaconianEncode(msg string, intn func(n int) int) (string, error) {
	var b strings.Builder
	b.Grow(len(msg) * baconBits)
	for i, c := range msg {
		switch {
		case isSpace(c):
			b.WriteRune(c)
		case isLetter(c):
			v := int(toLower(c) - 'a')
			for bit := baconBits - 1; bit >= 0; bit-- {
				if v>>bit&1 == 1 {
					b.WriteByte(byte('0' + baconThreshold + intn(10-baconThreshold)))
				} else {
					b.WriteByte(byte('0' + intn(baconThreshold)))
				}
			}
		default:
			return "", fmt.Errorf("%w: baconian cannot encode %q at offset %d", domain.ErrMalformedInput, c, i)
		}
	}
	return b.String(), nil
}

// BaconianDecode reads runs of five digits back into lowercase letters.
// Whitespace passes through; anything else, a partial group, or a group
// above 'z' is a decode error.
func BaconianDecode(msg string) (string, error) {
	var b strings.Builder
	v, n := 0, 0
	flush := func(offset int) error {
		if n == 0 {
			return nil
		}
		if n != baconBits {
			return fmt.Errorf("%w: baconian group of %d digits before offset %d", domain.ErrMalformedInput, n, offset)
		}
		if v > 25 {
			return fmt.Errorf("%w: baconian group value %d out of range before offset %d", domain.ErrMalformedInput, v, offset)
		}
		b.WriteRune('a' + rune(v))
		v, n = 0, 0
		return nil
	}
	for i, c := range msg {
		switch {
		case isDigit(c):
			bit := 0
			if c-'0' >= baconThreshold {
				bit = 1
			}
			v = v<<1 | bit
			n++
			if n == baconBits {
				if err := flush(i + 1); err != nil {
					return "", err
				}
			}
		case isSpace(c):
			if err := flush(i); err != nil {
				return "", err
			}
			b.WriteRune(c)
		default:
			return "", fmt.Errorf("%w: baconian input has %q at offset %d", domain.ErrMalformedInput, c, i)
		}
	}
	if err := flush(len(msg)); err != nil {
		return "", err
	}
	return b.String(), nil
}
