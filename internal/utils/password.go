package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"io"
)

// PasswordSaltBytes is the size of the per-password HMAC key (the SHA-512 block size).
const PasswordSaltBytes = 128

// HashPassword generates a fresh salt from r and returns HMAC-SHA-512(salt, password) with it.
func HashPassword(r io.Reader, password string) (hash []byte, salt []byte, err error) {
	salt = make([]byte, PasswordSaltBytes)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate password salt: %w", err)
	}
	return ComputePasswordHash(password, salt), salt, nil
}

// ComputePasswordHash returns the HMAC-SHA-512 of the UTF-8 password keyed by salt.
func ComputePasswordHash(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// CheckPasswordHash recomputes the MAC under the stored salt and compares it in constant time.
func CheckPasswordHash(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}
	return hmac.Equal(ComputePasswordHash(password, salt), hash)
}
