package cipher

import (
	"encoding/base64"
	"fmt"
	"strings"

	"ciphertoy/internal/domain"
)

// Base64 encodes msg's UTF-8 bytes with the standard padded alphabet, or
// decodes it. Surrounding whitespace is ignored when decoding.
func Base64(msg string, dir domain.Direction) (string, error) {
	if dir == domain.Encrypt {
		return base64.StdEncoding.EncodeToString([]byte(msg)), nil
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(msg))
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", domain.ErrMalformedInput, err)
	}
	return string(b), nil
}
