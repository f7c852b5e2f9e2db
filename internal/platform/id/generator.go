package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// Generator creates short opaque suffixes used to disambiguate slugs.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

// NewRandomGenerator returns a generator of hex strings built from size random bytes.
func NewRandomGenerator(size int) *RandomGenerator {
	if size < 1 {
		size = 4
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Slug joins parts into a lowercase, dash separated identifier.
// Letters and digits are kept; every other run of characters becomes a single dash.
func Slug(parts ...string) string {
	var b strings.Builder
	pendingDash := false
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				if pendingDash && b.Len() > 0 {
					b.WriteByte('-')
				}
				pendingDash = false
				b.WriteRune(r)
				continue
			}
			pendingDash = true
		}
		pendingDash = true
	}

	return b.String()
}
