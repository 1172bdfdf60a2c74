package score

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	weightHits      = 0.20
	weightLength    = 0.10
	weightAlpha     = 0.25
	weightFirstLast = 0.15
	weightFrequency = 0.30

	avgWordLength   = 4.7
	lengthExponent  = 1.3
	lengthNormalize = 8.0
	hitScale        = 3.0

	// perfectFirstLast is a word starting with 't' and ending with 'e'.
	perfectFirstLast = 0.1594 + 0.1917
)

// MinScore is returned for text with no letters to score.
var MinScore = math.Inf(-1)

// letterFrequency is the relative frequency of a..z in English text.
var letterFrequency = [26]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, 0.06094,
	0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, 0.07507, 0.01929,
	0.00095, 0.05987, 0.06327, 0.09056, 0.02758, 0.00978, 0.02360, 0.00150,
	0.01974, 0.00074,
}

// Likelihoods of the ten most common word-initial and word-final letters.
var (
	firstLetter = map[rune]float64{
		't': 0.1594, 'a': 0.1550, 'i': 0.0823, 's': 0.0775, 'o': 0.0712,
		'c': 0.0597, 'm': 0.0426, 'f': 0.0408, 'p': 0.0400, 'w': 0.0382,
	}
	lastLetter = map[rune]float64{
		'e': 0.1917, 's': 0.1435, 'd': 0.0923, 't': 0.0864, 'n': 0.0786,
		'y': 0.0730, 'r': 0.0693, 'o': 0.0467, 'l': 0.0456, 'f': 0.0408,
	}
)

// Scorer scores candidate plaintexts against a wordlist.
type Scorer struct {
	words []string
}

// New returns a Scorer over wl. A nil wordlist scores with no word hits.
func New(wl *Wordlist) *Scorer {
	if wl == nil {
		return &Scorer{}
	}
	return &Scorer{words: wl.Words()}
}

// Score returns the English-likelihood of text; higher is more plausible.
// Text is trimmed and lowercased first. Text without any ASCII letter scores
// MinScore.
func (s *Scorer) Score(text string) float64 {
	msg := strings.ToLower(strings.TrimSpace(text))

	var counts [26]int
	total, alpha := 0, 0
	for _, c := range msg {
		total++
		if c >= 'a' && c <= 'z' {
			counts[c-'a']++
			alpha++
		}
	}
	if total == 0 || alpha == 0 {
		return MinScore
	}
	n := float64(total)

	hits := 0
	for _, w := range s.words {
		if strings.Contains(msg, w) {
			hits++
		}
	}

	words := strings.Fields(msg)
	var lengthDiff, firstLast float64
	for _, w := range words {
		d := math.Abs(float64(utf8.RuneCountInString(w)) - avgWordLength)
		lengthDiff += math.Pow(d, lengthExponent)

		first, _ := utf8.DecodeRuneInString(w)
		last, _ := utf8.DecodeLastRuneInString(w)
		firstLast += firstLetter[first] + lastLetter[last]
	}
	nWords := float64(len(words))

	var deviation float64
	for i, c := range counts {
		deviation += math.Abs(letterFrequency[i] - float64(c)/n)
	}

	score := weightHits*(float64(hits)*hitScale/n) +
		weightLength*(1-lengthDiff/nWords/lengthNormalize) +
		weightAlpha*(float64(alpha)/n) +
		weightFirstLast*(firstLast/perfectFirstLast/nWords) +
		weightFrequency*(1-deviation)
	return score * 100
}
