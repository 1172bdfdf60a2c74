package cipher

import (
	"sort"

	"ciphertoy/internal/domain"
)

// Columnar lays msg row-major into len(key) columns and emits the columns in
// alphabetical key order. No padding is added: the first len(msg) % len(key)
// columns are one rune longer, which the decoder recomputes.
//
// Duplicate key letters are ordered left to right (a stable sort), so every
// non-empty key defines a single column permutation.
func Columnar(msg, key string, dir domain.Direction) (string, error) {
	if key == "" {
		return "", domain.NewKeyError(domain.KindColumnar, "key", "must not be empty")
	}
	order := columnOrder([]rune(key))
	in := []rune(msg)
	if dir == domain.Decrypt {
		return string(columnarDecrypt(in, order)), nil
	}
	k := len(order)
	out := make([]rune, 0, len(in))
	for _, col := range order {
		for i := col; i < len(in); i += k {
			out = append(out, in[i])
		}
	}
	return string(out), nil
}

// columnOrder returns column indexes sorted by their key rune, case-folded,
// ties broken by position.
func columnOrder(key []rune) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return toLower(key[order[a]]) < toLower(key[order[b]])
	})
	return order
}

func columnarDecrypt(in []rune, order []int) []rune {
	k := len(order)
	full, rem := len(in)/k, len(in)%k
	cols := make([][]rune, k)
	pos := 0
	for _, col := range order {
		n := full
		if col < rem {
			n++
		}
		cols[col] = in[pos : pos+n]
		pos += n
	}
	out := make([]rune, len(in))
	for i := range out {
		out[i] = cols[i%k][i/k]
	}
	return out
}
