package cipher

import "ciphertoy/internal/domain"

// polybiusSquare is the 5x5 grid a..y in row-major order. 'z' is not in the
// grid and passes through, which keeps the cipher a bijection.
const polybiusSquare = "abcdefghijklmnopqrstuvwxy"

// Polybius replaces each letter with the one a row below it in the same
// column (wrapping the last row to the first), preserving case. Decryption
// moves a row up.
func Polybius(msg string, dir domain.Direction) string {
	step := 5
	if dir == domain.Decrypt {
		step = 20
	}
	return mapLetters(msg, func(x int) int {
		if x >= len(polybiusSquare) {
			return x
		}
		return (x + step) % len(polybiusSquare)
	})
}
