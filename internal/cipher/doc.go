// Package cipher implements the classical cipher transforms used by ciphertoy.
//
// Contents
//
//   - Transform primitives over the printable band '0'..'~' (Shift) and
//     modular helpers shared by several ciphers
//   - Shift ciphers: Caesar, ROT13, Atbash, Affine
//   - Keyed polyalphabetic ciphers: Vigenere, Beaufort, Autokey
//   - Substitution: SimpleSub (seeded shuffle), Polybius (5x5 grid)
//   - Transposition: Railfence, Columnar
//   - Encodings: Baconian (randomized digits), Base64
//
// # Dispatch
//
// Apply selects a transform by domain.Kind and direction, after validating the
// key. ParseKey turns command-line key text into a domain.Key.
//
// # Notes
//
// Every transform except Baconian encryption is deterministic, and for every
// valid key decrypt(encrypt(m, k), k) == m. None of these ciphers is secure.
package cipher
