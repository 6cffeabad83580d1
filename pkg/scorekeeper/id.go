package scorekeeper

import (
	"fmt"
	"time"

	"guesstimate-server/internal/rng"
)

const idSuffixLength = 9
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// random may be swapped out for a deterministic generator in tests
var random rng.Generator = rng.Crypto{}

// generateID returns a unique game identifier
// The format is the creation time in unix milliseconds plus a random
// base36 suffix; identifiers are never reused
func generateID() string {
	suffix := make([]byte, idSuffixLength)
	for i := range suffix {
		suffix[i] = idAlphabet[random.Intn(len(idAlphabet))]
	}

	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
