package types

import (
	"fmt"
	"strings"
)

// Kind identifies one cipher algorithm from the closed set the library supports.
type Kind int

const (
	KindCaesar Kind = iota
	KindVigenere
	KindBeaufort
	KindAutokey
	KindAtbash
	KindROT13
	KindAffine
	KindBaconian
	KindRailfence
	KindPolybius
	KindSimpleSub
	KindColumnar
	KindBase64
)

// Strategy selects how a brute-force run searches a cipher's key space.
type Strategy int

const (
	// StrategyBounded enumerates a small closed numeric parameter range.
	StrategyBounded Strategy = iota
	// StrategyDictionary tries every entry of an external key-candidate list.
	StrategyDictionary
)

// String returns the strategy name.
func (s Strategy) String() string {
	if s == StrategyDictionary {
		return "dictionary"
	}
	return "bounded"
}

var kindNames = [...]string{
	KindCaesar:    "caesar",
	KindVigenere:  "vigenere",
	KindBeaufort:  "beaufort",
	KindAutokey:   "autokey",
	KindAtbash:    "atbash",
	KindROT13:     "rot13",
	KindAffine:    "affine",
	KindBaconian:  "baconian",
	KindRailfence: "railfence",
	KindPolybius:  "polybius",
	KindSimpleSub: "simplesub",
	KindColumnar:  "columnar",
	KindBase64:    "base64",
}

var kindLabels = [...]string{
	KindCaesar:    "Caesar",
	KindVigenere:  "Vigenere",
	KindBeaufort:  "Beaufort",
	KindAutokey:   "Autokey",
	KindAtbash:    "Atbash",
	KindROT13:     "ROT13",
	KindAffine:    "Affine",
	KindBaconian:  "Bacon",
	KindRailfence: "Railfence",
	KindPolybius:  "Polybius",
	KindSimpleSub: "Simplesub",
	KindColumnar:  "Columnar",
	KindBase64:    "Base64",
}

// AllKinds lists every cipher kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		out = append(out, Kind(k))
	}
	return out
}

// Valid reports whether k is a member of the closed kind set.
func (k Kind) Valid() bool { return k >= KindCaesar && k <= KindBase64 }

// String returns the lowercase identifier used on the command line.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Label returns the display name used in ranked candidate labels.
func (k Kind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindLabels[k]
}

// Strategy returns the brute-force strategy for k.
func (k Kind) Strategy() Strategy {
	switch k {
	case KindVigenere, KindBeaufort, KindAutokey, KindSimpleSub, KindColumnar:
		return StrategyDictionary
	case KindCaesar, KindAtbash, KindROT13, KindAffine, KindBaconian,
		KindRailfence, KindPolybius, KindBase64:
		return StrategyBounded
	}
	panic(fmt.Sprintf("types: unknown cipher kind %d", int(k)))
}

// ParseKind resolves a kind from its command-line name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "bacon":
		return KindBaconian, nil
	case "columnar-transposition", "coltrans":
		return KindColumnar, nil
	}
	for k, v := range kindNames {
		if v == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown cipher %q", name)
}

// Direction selects encryption or decryption.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}
