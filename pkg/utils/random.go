package utils

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
)

// GenerateID returns a fresh session id.
func GenerateID() string {
	return uuid.NewString()
}

// StringToSeed hashes a string into a deterministic RNG seed.
// Sessions seed their predator/decoration RNG from the master seed and
// their id, so a given id always sees the same world for a given seed.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// NewRng builds a private generator. Never share one between goroutines.
func NewRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
