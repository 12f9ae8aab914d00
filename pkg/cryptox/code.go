package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ActivationCodeLength is the length in characters of an activation code.
const ActivationCodeLength = 8

// GenerateActivationCode returns a short uppercase hex code handed to a new
// account holder out of band. Collisions are possible at this length, so
// callers insert under a uniqueness constraint and retry.
func GenerateActivationCode() (string, error) {
	buf := make([]byte, ActivationCodeLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate activation code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// GenerateNumericCode returns a uniformly random code of exactly `digits`
// decimal digits with no leading zero, suitable for typing into a chat
// command. Six digits gives 900000 possibilities.
func GenerateNumericCode(digits int) (string, error) {
	if digits < 1 || digits > 18 {
		return "", fmt.Errorf("digit count out of range: %d", digits)
	}

	low := int64(1)
	for i := 1; i < digits; i++ {
		low *= 10
	}
	span := low*10 - low // e.g. 900000 for 6 digits

	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("failed to generate numeric code: %w", err)
	}

	return fmt.Sprintf("%d", low+n.Int64()), nil
}
