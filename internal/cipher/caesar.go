package cipher

import "ciphertoy/internal/domain"

// Caesar shifts every rune of msg by shift within the printable band.
// Digits and punctuation inside the band move too.
func Caesar(msg string, shift int, dir domain.Direction) string {
	shift = mod(shift, bandSize)
	if dir == domain.Decrypt {
		shift = -shift
	}
	out := []rune(msg)
	for i, c := range out {
		out[i] = Shift(c, shift)
	}
	return string(out)
}

// ROT13 rotates ASCII letters by 13, preserving case. It is its own inverse.
func ROT13(msg string) string {
	return mapLetters(msg, func(x int) int { return (x + 13) % 26 })
}

// Atbash mirrors letters around the alphabet midpoint ('a'<->'z') and digits
// around '0'..'9'. It is its own inverse.
func Atbash(msg string) string {
	out := []rune(msg)
	for i, c := range out {
		switch {
		case isLower(c):
			out[i] = 'a' + 'z' - c
		case isUpper(c):
			out[i] = 'A' + 'Z' - c
		case isDigit(c):
			out[i] = '0' + '9' - c
		}
	}
	return string(out)
}
