package cipher

import (
	"fmt"

	"ciphertoy/internal/domain"
)

// Railfence writes msg along rails zig-zag rows and reads the rows in order.
// One rail is the identity; more rails than runes is an error.
func Railfence(msg string, rails int, dir domain.Direction) (string, error) {
	in := []rune(msg)
	if rails < 1 || rails > len(in) {
		return "", domain.NewKeyError(domain.KindRailfence, "rails",
			fmt.Sprintf("%d outside [2, %d]", rails, len(in)))
	}
	if rails == 1 {
		return msg, nil
	}
	rowOf := zigzag(len(in), rails)
	next := railOffsets(rowOf, rails)
	out := make([]rune, len(in))
	for col, r := range rowOf {
		if dir == domain.Decrypt {
			out[col] = in[next[r]]
		} else {
			out[next[r]] = in[col]
		}
		next[r]++
	}
	return string(out), nil
}

// zigzag returns the rail occupied by each column of an n-rune message.
func zigzag(n, rails int) []int {
	cycle := 2 * (rails - 1)
	rowOf := make([]int, n)
	for i := range rowOf {
		p := i % cycle
		if p >= rails {
			p = cycle - p
		}
		rowOf[i] = p
	}
	return rowOf
}

// railOffsets marks the occupied cells of each rail and returns, per rail,
// the ciphertext offset of its first cell when rails are read row by row.
func railOffsets(rowOf []int, rails int) []int {
	start := make([]int, rails+1)
	for _, r := range rowOf {
		start[r+1]++
	}
	for r := 1; r <= rails; r++ {
		start[r] += start[r-1]
	}
	return start[:rails]
}
