package cipher

import "ciphertoy/internal/domain"

var descriptions = map[domain.Kind]string{
	domain.KindCaesar: "A Caesar cipher is a monoalphabetic substitution cipher that shifts each " +
		"character by a fixed amount, the shift value. Here the shift wraps over the printable " +
		"band '0'..'~', so digits and punctuation move too.",
	domain.KindVigenere: "A Vigenere cipher is a polyalphabetic substitution cipher that shifts " +
		"characters by the values of a repeating key.",
	domain.KindBeaufort: "This Beaufort variant is a Vigenere cipher keyed with the Atbash " +
		"mirror of the key.",
	domain.KindAutokey: "The Autokey cipher is a polyalphabetic substitution cipher whose " +
		"running key is the secret key followed by the plaintext itself, which flattens the " +
		"character distribution compared to Vigenere.",
	domain.KindAtbash: "An Atbash cipher is a monoalphabetic substitution cipher that mirrors " +
		"the alphabet (a<->z) and the digits (0<->9). It is its own inverse.",
	domain.KindROT13: "ROT13 rotates each letter by 13 places, as if choosing the other side " +
		"of an alphabet wheel. It is its own inverse.",
	domain.KindAffine: "An Affine cipher maps each letter x to (a*x + b) mod 26 given the key " +
		"[a,b]. a must be coprime to 26 (1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25).",
	domain.KindBaconian: "A Baconian cipher encodes each letter as five binary digits. Here each " +
		"0 is a random digit 0-6 and each 1 a random digit 7-9, so encrypting the same text " +
		"twice gives different output. Only letters and whitespace can be encoded.",
	domain.KindRailfence: "A Railfence cipher is a transposition cipher that writes the message " +
		"in a zig-zag over a number of rails (the key) and reads the rails in order.",
	domain.KindPolybius: "A Polybius cipher replaces each letter with the letter one row below " +
		"it in a 5x5 grid of a..y. 'z' is outside the grid and passes through.",
	domain.KindSimpleSub: "A simple substitution cipher replaces letters through an alphabet " +
		"shuffled by a generator seeded with the key.",
	domain.KindColumnar: "A Columnar transposition cipher lays the message out in rows under the " +
		"key, then reads the columns in alphabetical key order. Repeated key letters are " +
		"ordered left to right.",
	domain.KindBase64: "Base64 encodes bytes as 6-bit groups mapped onto 64 symbols. It is an " +
		"encoding rather than a cipher and only obscures data from a casual reader.",
}

// Describe returns a short description of kind.
func Describe(kind domain.Kind) string {
	if d, ok := descriptions[kind]; ok {
		return d
	}
	return "unknown cipher"
}
