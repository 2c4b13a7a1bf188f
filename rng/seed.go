package rng

import (
	"math/rand"
	"strconv"
)

// seedSpace is 36^11: RandomSeed yields at most 11 base-36 digits.
const seedSpace int64 = 131621703842267136

// RandomSeed returns a short random base-36 token suitable as a replay seed.
// It draws from the global math/rand stream and is never empty.
func RandomSeed() string {
	return strconv.FormatInt(rand.Int63n(seedSpace), 36)
}
