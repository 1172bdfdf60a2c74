// Package commands defines the ciphertoy CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt      Encrypt a message with one cipher
//   - decrypt      Decrypt a message with one cipher and a known key
//   - bruteforce   Try every selected cipher and rank the plaintext guesses
//   - score        Print the English-likelihood score of a text
//   - info         Describe a cipher
//   - ciphers      List the supported ciphers
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds a
// zap logger before any subcommand runs. Commands that need the scorer or the
// brute-force service build the dependency graph through the shared app
// context on first use. Results go to stdout; logs and the progress line go to
// stderr.
package commands
