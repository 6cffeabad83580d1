package scorekeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Alice", NormalizeName("alice"))
	assert.Equal(t, "Alice", NormalizeName("  Alice  "))
	assert.Equal(t, "Bob smith", NormalizeName("bob smith"))
	assert.Equal(t, "Åsa", NormalizeName("åsa"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestValidateNames(t *testing.T) {
	names, err := ValidateNames([]string{" alice", "BOB", "", "  ", "carol"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "BOB", "Carol"}, names)

	names, err = ValidateNames([]string{"Alice", "alice"})
	assert.Nil(t, names)
	assert.Equal(t, ErrDuplicatePlayerName, err)

	names, err = ValidateNames([]string{"Alice", " ALICE "})
	assert.Nil(t, names)
	assert.Equal(t, ErrDuplicatePlayerName, err)

	names, err = ValidateNames([]string{"Alice"})
	assert.Nil(t, names)
	assert.Equal(t, ErrNotEnoughPlayers, err)

	names, err = ValidateNames(nil)
	assert.Nil(t, names)
	assert.Equal(t, ErrNotEnoughPlayers, err)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Alice")
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 0, p.TotalScore)
	assert.NotNil(t, p.Rounds)
	assert.Nil(t, p.CurrentRound)
}
