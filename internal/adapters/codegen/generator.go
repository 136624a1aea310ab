package codegen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"weddingregistry/internal/domain"
)

const (
	alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength = 6
)

type generator struct{}

// NewGenerator returns a domain.ReservationCodeGenerator backed by crypto/rand.
// The code is a bearer credential, so a cryptographically secure source is
// required. Codes are not checked for uniqueness: at 36^6 possible values the
// collision probability is negligible for a registry of this size.
func NewGenerator() domain.ReservationCodeGenerator {
	return generator{}
}

func (generator) Generate() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, codeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
