package types

// Key is the key material for one cipher invocation. Which fields are read
// depends on the Kind:
//
//   - Caesar: N is the shift
//   - Railfence: N is the rail count
//   - Affine: A is the multiplier, B the additive term
//   - Vigenere, Beaufort, Autokey, SimpleSub, Columnar: Text
//   - Atbash, ROT13, Baconian, Polybius, Base64: none
type Key struct {
	N    int
	A    int
	B    int
	Text string
}

// ShiftKey returns a key carrying an integer parameter.
func ShiftKey(n int) Key { return Key{N: n} }

// AffineKey returns a key carrying an affine (a, b) pair.
func AffineKey(a, b int) Key { return Key{A: a, B: b} }

// TextKey returns a key carrying a key string.
func TextKey(s string) Key { return Key{Text: s} }
