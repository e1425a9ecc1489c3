package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Generator creates opaque IDs, e.g. for backfill runs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns "<prefix>_<16 hex chars>", or bare hex without a prefix.
type RandomGenerator struct {
	prefix string
}

func NewRandomGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: strings.TrimSpace(prefix)}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	value := hex.EncodeToString(buf)
	if g == nil || g.prefix == "" {
		return value, nil
	}
	return g.prefix + "_" + value, nil
}
