package scorekeeper

// bidMetBonus is awarded on top of the tricks taken when a player's bid is exact
const bidMetBonus = 10

// PlayerRound is a single player's record for a single round
// Bid is set during the bidding phase, Actual after the hand is played, and
// Score once the round is finalized by the next advance
type PlayerRound struct {
	RoundNumber int  `json:"roundNumber"`
	GoingDown   bool `json:"goingDown"`
	Bid         *int `json:"bidAmount"`
	Actual      *int `json:"actualAmount"`
	Score       *int `json:"roundScore"`
}

func newPlayerRound(round Round) *PlayerRound {
	return &PlayerRound{
		RoundNumber: round.Number,
		GoingDown:   round.GoingDown,
	}
}

// Round returns the schedule round this record belongs to
func (pr *PlayerRound) Round() Round {
	return Round{Number: pr.RoundNumber, GoingDown: pr.GoingDown}
}

// calculateScore computes the round score once both amounts are known
// Recomputing with the same inputs yields the same result
func (pr *PlayerRound) calculateScore() {
	if pr.Bid == nil || pr.Actual == nil {
		return
	}

	score := *pr.Actual
	if *pr.Bid == *pr.Actual {
		score = bidMetBonus + *pr.Actual
	}

	pr.Score = &score
}
