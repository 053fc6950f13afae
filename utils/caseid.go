package utils

import (
	"crypto/rand"
	"fmt"
)

const caseIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CaseIDLength is the number of characters in a generated case ID.
const CaseIDLength = 8

// GenerateCaseID mints a short uppercase alphanumeric case token. Eight
// characters over a 36-symbol alphabet give ~2x10^12 combinations, which is
// accepted as effectively unique for the expected submission volume;
// collisions are a known gap, not prevented.
func GenerateCaseID() (string, error) {
	buf := make([]byte, CaseIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate case id: %w", err)
	}
	for i, b := range buf {
		buf[i] = caseIDAlphabet[int(b)%len(caseIDAlphabet)]
	}
	return string(buf), nil
}
