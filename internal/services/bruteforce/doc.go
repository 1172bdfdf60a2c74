// Package bruteforce recovers plaintext from ciphertext without a known key.
//
// A run walks the requested cipher kinds in order. Bounded kinds (Caesar,
// Atbash, ROT13, Polybius, Affine, Baconian, Railfence, Base64) enumerate
// their small parameter range on the calling goroutine. Dictionary kinds
// (Vigenere, Beaufort, Autokey, SimpleSub, Columnar) try every key of a
// dictionary loaded once per run, split into fixed-size chunks that an
// errgroup worker pool decodes and scores concurrently. Each chunk writes
// into its own result slot; slots are merged in chunk order once the pool
// drains, so the ranking does not depend on scheduling.
//
// A failing kind (missing dictionary, undecodable input) is recorded in
// Result.Failures and the run continues with the remaining kinds.
// Cancellation is checked between chunks and between kinds.
package bruteforce
