// Package score rates how plausibly a string is English.
//
// The score is 100 times a weighted sum of five signals:
//
//   - common-word hit rate (0.20)
//   - word-length plausibility around 4.7 letters (0.10)
//   - alphabetic density (0.25)
//   - first/last letter plausibility (0.15)
//   - letter-frequency fit (0.30)
//
// A Scorer holds a read-only Wordlist and is safe for concurrent use.
package score
