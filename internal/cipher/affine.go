package cipher

import (
	"fmt"

	"ciphertoy/internal/domain"
)

// Affine maps each letter x to (a*x + b) mod 26, preserving case. Decryption
// uses the inverse of a modulo 26, so a must be coprime to 26.
func Affine(msg string, a, b int, dir domain.Direction) (string, error) {
	inv, ok := modInverse(a, 26)
	if !ok {
		return "", domain.NewKeyError(domain.KindAffine, "a", fmt.Sprintf("%d is not coprime to 26", a))
	}
	a, b = mod(a, 26), mod(b, 26)
	if dir == domain.Decrypt {
		return mapLetters(msg, func(x int) int { return mod(inv*(x-b), 26) }), nil
	}
	return mapLetters(msg, func(x int) int { return mod(a*x+b, 26) }), nil
}
