package utils

import (
	"encoding/hex"
	"fmt"
	"io"
)

// GenerateSecureRandomString reads lengthInBytes bytes from r and hex encodes them.
// For example, lengthInBytes=64 will result in a 128-character hex string.
// r must be safe for concurrent use when shared (crypto/rand.Reader is).
func GenerateSecureRandomString(r io.Reader, lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RandomStringFromAlphabet draws length characters uniformly from alphabet using bytes read from r.
// Bytes that would bias the distribution are discarded.
func RandomStringFromAlphabet(r io.Reader, alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", fmt.Errorf("alphabet must hold between 1 and 256 characters, got %d", len(alphabet))
	}

	limit := 256 - 256%len(alphabet)
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
