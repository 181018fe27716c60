// Package lobbycode generates human-typeable lobby join codes.
package lobbycode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet is the set of characters codes are drawn from. Visually
// ambiguous characters (0/O, 1/l/i) are excluded; 31 characters at the
// default length give well over 78 bits of entropy.
const Alphabet = "23456789abcdefghjkmnpqrstuvwxyz"

// DefaultLength is used when the caller passes a non-positive length.
const DefaultLength = 16

var alphabetLen = big.NewInt(int64(len(Alphabet)))

// Generate returns a code of the given length drawn uniformly at random
// from Alphabet using a cryptographically secure source. Generate has no
// persistence side effect; uniqueness is the caller's problem, enforced by
// the store's primary-key constraint with regenerate-on-collision.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}
