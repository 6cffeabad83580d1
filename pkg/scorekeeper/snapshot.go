package scorekeeper

import (
	"encoding/json"
	"time"
)

// Snapshot serializes the game for persistence
// Every field, including nested player round history and nullable amounts,
// round-trips through FromSnapshot
func (g *Game) Snapshot() ([]byte, error) {
	return json.Marshal(g)
}

// FromSnapshot reconstructs a game from a persisted snapshot
// Partial or legacy input is tolerated: a missing id is regenerated, missing
// lists become empty, missing flags default to false, and a missing dealer
// defaults to unset
func FromSnapshot(data []byte) (*Game, error) {
	game := &Game{DealerIndex: -1}
	if err := json.Unmarshal(data, game); err != nil {
		return nil, err
	}

	if game.ID == "" {
		game.ID = generateID()
	}

	if game.Date.IsZero() {
		game.Date = time.Now()
	}

	if game.Players == nil {
		game.Players = make([]*Player, 0)
	}

	if game.RemainingRounds == nil {
		game.RemainingRounds = make([]Round, 0)
	}

	if game.CompletedRounds == nil {
		game.CompletedRounds = make([]Round, 0)
	}

	for _, player := range game.Players {
		if player.Rounds == nil {
			player.Rounds = make([]*PlayerRound, 0)
		}

		// re-establish the alias between the active record and the history;
		// JSON decoding produces two separate objects
		if last := len(player.Rounds) - 1; player.CurrentRound != nil && last >= 0 &&
			player.Rounds[last].Round() == player.CurrentRound.Round() {
			player.CurrentRound = player.Rounds[last]
		}
	}

	return game, nil
}
