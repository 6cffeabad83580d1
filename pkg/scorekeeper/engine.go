package scorekeeper

// NextRound finishes the round in progress and deals the next one
// Finishing a round rotates the dealer, moves the round into the completed
// history, and finalizes every player's score. Returns true if another round
// was started, or false on the call that completes the game. Calling it again
// on a completed game is a no-op that keeps returning false
func (g *Game) NextRound() bool {
	if g.Completed {
		return false
	}

	if g.CurrentRound != nil {
		g.nextDealer()
		g.CompletedRounds = append(g.CompletedRounds, *g.CurrentRound)
	}

	var next *Round
	if len(g.RemainingRounds) > 0 {
		round := g.RemainingRounds[0]
		g.RemainingRounds = g.RemainingRounds[1:]
		next = &round
	}

	if next == nil {
		g.CurrentRound = nil
		g.Completed = true
	} else {
		g.CurrentRound = next
	}

	for _, player := range g.Players {
		// finalize the outgoing round before the new one is dealt
		if player.CurrentRound != nil {
			player.CurrentRound.calculateScore()
			if player.CurrentRound.Score != nil {
				player.TotalScore += *player.CurrentRound.Score
			}
		}

		if next != nil {
			round := newPlayerRound(*next)
			player.Rounds = append(player.Rounds, round)
			player.CurrentRound = round
		} else {
			player.CurrentRound = nil
		}
	}

	return next != nil
}

// PreviousRound restores the immediately preceding round for correction
// Scores from the restored round are un-finalized, the dealer rotates back a
// seat, and the game reopens awaiting actual tricks. Fails with
// ErrNoPriorRound unless at least two rounds have ever been started; with a
// single round there is nothing usable to revert to
func (g *Game) PreviousRound() error {
	roundsEver := len(g.CompletedRounds)
	if g.CurrentRound != nil {
		roundsEver++
	}

	if roundsEver < 2 {
		return ErrNoPriorRound
	}

	for _, player := range g.Players {
		switch {
		case player.CurrentRound == nil:
			// game was completed; reopen the last round played
			player.CurrentRound = player.Rounds[len(player.Rounds)-1]
		case len(player.Rounds) >= 2:
			player.Rounds = player.Rounds[:len(player.Rounds)-1]
			player.CurrentRound = player.Rounds[len(player.Rounds)-1]
		default:
			// unreachable behind the completed-rounds guard
			player.CurrentRound = nil
		}

		if player.CurrentRound != nil {
			if player.CurrentRound.Score != nil {
				player.TotalScore -= *player.CurrentRound.Score
			}
			player.CurrentRound.Score = nil
		}
	}

	if g.CurrentRound != nil {
		g.RemainingRounds = append([]Round{*g.CurrentRound}, g.RemainingRounds...)
	}

	last := len(g.CompletedRounds) - 1
	round := g.CompletedRounds[last]
	g.CompletedRounds = g.CompletedRounds[:last]
	g.CurrentRound = &round

	g.prevDealer()
	g.MidRound = true
	g.Completed = false
	return nil
}

// nextDealer rotates the dealer to the next seat, wrapping around
func (g *Game) nextDealer() {
	if g.DealerIndex < 0 || len(g.Players) == 0 {
		return
	}

	g.DealerIndex = (g.DealerIndex + 1) % len(g.Players)
}

// prevDealer rotates the dealer back one seat, the inverse of nextDealer
func (g *Game) prevDealer() {
	if g.DealerIndex < 0 || len(g.Players) == 0 {
		return
	}

	g.DealerIndex = (g.DealerIndex - 1 + len(g.Players)) % len(g.Players)
}
