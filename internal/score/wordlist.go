package score

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed data/common_words.txt
var defaultWords string

// Wordlist is an ordered, deduplicated list of lowercase common words.
type Wordlist struct {
	words []string
}

// NewWordlist lowercases and trims words, dropping blanks and repeats while
// keeping first-seen order.
func NewWordlist(words []string) *Wordlist {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return &Wordlist{words: out}
}

// ReadWordlist reads a newline-delimited wordlist from r.
func ReadWordlist(r io.Reader) (*Wordlist, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return NewWordlist(words), nil
}

// DefaultWordlist returns the embedded common-word list.
func DefaultWordlist() *Wordlist {
	return NewWordlist(strings.Split(defaultWords, "\n"))
}

// Words returns the words in order. Callers must not modify the slice.
func (w *Wordlist) Words() []string { return w.words }

// Len returns the number of words.
func (w *Wordlist) Len() int { return len(w.words) }
