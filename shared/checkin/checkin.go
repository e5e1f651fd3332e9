// Package checkin generates and verifies booking check-in codes. Only the
// bcrypt hash is stored; the plain code is shown once to the client.
package checkin

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	codeLength = 6
	digits     = "0123456789"
)

var (
	ErrInvalidCode = errors.New("invalid check-in code")
)

// Generate returns a fresh numeric check-in code.
func Generate() (string, error) {
	code := make([]byte, codeLength)

	for i := range code {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate check-in code: %w", err)
		}

		code[i] = digits[idx.Int64()]
	}

	return string(code), nil
}

// Hash generates a bcrypt hash of the check-in code
func Hash(code string) (string, error) {
	if code == "" {
		return "", errors.New("check-in code cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash check-in code: %w", err)
	}

	return string(bytes), nil
}

// Verify checks if the provided code matches the hash
func Verify(code, hash string) error {
	if code == "" || hash == "" {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCode
		}

		return fmt.Errorf("failed to verify check-in code: %w", err)
	}

	return nil
}
