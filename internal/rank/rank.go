// Package rank orders scored candidates and formats them for reporting.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"ciphertoy/internal/domain"
)

// DefaultTop is how many candidates a report shows.
const DefaultTop = 50

// Rank sorts cands by descending score and drops candidates whose text was
// already seen, keeping the first (highest-ranked) occurrence. Equal scores
// keep their input order, so the result is deterministic for a given input.
// cands is not modified.
func Rank(cands []domain.Candidate) []domain.Candidate {
	sorted := make([]domain.Candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	seen := make(map[string]struct{}, len(sorted))
	out := sorted[:0]
	for _, c := range sorted {
		if _, dup := seen[c.Text]; dup {
			continue
		}
		seen[c.Text] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Top returns the first k ranked candidates.
func Top(ranked []domain.Candidate, k int) []domain.Candidate {
	if k < 0 || k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// FormatLine renders c as "(score): text [label]".
func FormatLine(c domain.Candidate) string {
	return fmt.Sprintf("(%.2f): %s [%s]", c.Score, strings.TrimSpace(c.Text), strings.TrimSpace(c.Label))
}

// Report renders one line per candidate.
func Report(cands []domain.Candidate) string {
	var b strings.Builder
	for _, c := range cands {
		b.WriteString(FormatLine(c))
		b.WriteByte('\n')
	}
	return b.String()
}
