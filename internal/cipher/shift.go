package cipher

const (
	bandLow  = '0'
	bandHigh = '~'
	bandSize = bandHigh - bandLow + 1 // 79 symbols
)

// Shift moves c by delta positions within the printable band '0'..'~',
// wrapping at either end. Runes outside the band are returned unchanged so
// whitespace, control characters and non-ASCII text survive every shift.
func Shift(c rune, delta int) rune {
	if c < bandLow || c > bandHigh {
		return c
	}
	return rune(mod(int(c-bandLow)+delta%bandSize, bandSize)) + bandLow
}

// mod returns the Euclidean remainder of a modulo m, always in [0, m).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// modInverse returns x with a*x ≡ 1 (mod m), or false when none exists.
func modInverse(a, m int) (int, bool) {
	a = mod(a, m)
	if gcd(a, m) != 1 {
		return 0, false
	}
	// Extended Euclid.
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	return mod(oldS, m), true
}

func isLower(c rune) bool  { return c >= 'a' && c <= 'z' }
func isUpper(c rune) bool  { return c >= 'A' && c <= 'Z' }
func isLetter(c rune) bool { return isLower(c) || isUpper(c) }
func isDigit(c rune) bool  { return c >= '0' && c <= '9' }

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func toLower(c rune) rune {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

// mapLetters applies f to the 0..25 index of every ASCII letter in s,
// preserving case. Other runes pass through.
func mapLetters(s string, f func(int) int) string {
	out := []rune(s)
	for i, c := range out {
		switch {
		case isLower(c):
			out[i] = 'a' + rune(f(int(c-'a')))
		case isUpper(c):
			out[i] = 'A' + rune(f(int(c-'A')))
		}
	}
	return string(out)
}
