// Package store provides flat-file I/O for ciphertoy's external resources.
//
// It reads newline-delimited text (wordlists and key dictionaries), optionally
// zstd or xz compressed, and writes ranked brute-force results atomically via
// a temp file and rename. Missing inputs are reported as
// domain.ErrMissingResource.
//
// The package includes:
//   - ReadLines: ordered line reader with an optional prefix limit
//   - FileDictionary: a domain.DictionarySource over a password corpus
//   - LoadWordlist: scoring wordlists (embedded default when no path is set)
//   - FileSink: a domain.ResultSink writing "(score): text [label]" lines or
//     a JSON document, read back with ReadResults
package store
