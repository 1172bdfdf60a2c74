package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when key material has the wrong shape for a cipher.
	ErrInvalidKey = errors.New("invalid key")
	// ErrMalformedInput is returned when ciphertext cannot be decoded deterministically.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptyMessage is returned before any cipher runs on an empty message.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMissingResource is returned when a wordlist or dictionary cannot be read.
	ErrMissingResource = errors.New("missing resource")
)

// KeyError identifies the offending parameter of an invalid key.
type KeyError struct {
	Kind   Kind
	Param  string
	Reason string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: invalid key parameter %q: %s", e.Kind, e.Param, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidKey.
func (e *KeyError) Unwrap() error { return ErrInvalidKey }

// NewKeyError returns a *KeyError for kind and param.
func NewKeyError(kind Kind, param, reason string) error {
	return &KeyError{Kind: kind, Param: param, Reason: reason}
}
