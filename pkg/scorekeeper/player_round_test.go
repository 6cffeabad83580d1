package scorekeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(n int) *int {
	return &n
}

func TestPlayerRound_calculateScore(t *testing.T) {
	// an exact bid earns the bonus on top of the tricks taken
	pr := &PlayerRound{Bid: intp(3), Actual: intp(3)}
	pr.calculateScore()
	assert.Equal(t, 13, *pr.Score)

	// a missed bid scores the tricks taken alone
	pr = &PlayerRound{Bid: intp(3), Actual: intp(5)}
	pr.calculateScore()
	assert.Equal(t, 5, *pr.Score)

	pr = &PlayerRound{Bid: intp(2), Actual: intp(0)}
	pr.calculateScore()
	assert.Equal(t, 0, *pr.Score)

	// a made zero bid still earns the bonus
	pr = &PlayerRound{Bid: intp(0), Actual: intp(0)}
	pr.calculateScore()
	assert.Equal(t, 10, *pr.Score)
}

func TestPlayerRound_calculateScore_incomplete(t *testing.T) {
	pr := &PlayerRound{Bid: intp(1)}
	pr.calculateScore()
	assert.Nil(t, pr.Score)

	pr = &PlayerRound{Actual: intp(1)}
	pr.calculateScore()
	assert.Nil(t, pr.Score)
}

func TestPlayerRound_calculateScore_idempotent(t *testing.T) {
	pr := &PlayerRound{Bid: intp(2), Actual: intp(2)}
	pr.calculateScore()
	pr.calculateScore()
	assert.Equal(t, 12, *pr.Score)
}

func TestPlayerRound_Round(t *testing.T) {
	pr := newPlayerRound(Round{Number: 5, GoingDown: true})
	assert.Equal(t, Round{Number: 5, GoingDown: true}, pr.Round())
	assert.Nil(t, pr.Bid)
	assert.Nil(t, pr.Actual)
	assert.Nil(t, pr.Score)
}
