// Package app wires application dependencies for the CLI.
//
// Config is read from YAML (by default $HOME/.ciphertoy/config.yaml) and then
// overridden by command-line flags. NewWire builds the scorer, the dictionary
// source, the results sink and the brute-force service from it, exposing them
// via the Wire struct for commands to use.
package app
