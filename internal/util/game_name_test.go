package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomGameName(t *testing.T) {
	random = rand.New(rand.NewSource(0)) // nolint:gosec
	a := assert.New(t)

	// adjectives are single words, so the first space splits the parts
	for i := 0; i < 25; i++ {
		adjective, occasion, found := strings.Cut(RandomGameName(), " ")
		a.True(found)
		a.Contains(adjectives, adjective)
		a.Contains(occasions, occasion)
	}
}
