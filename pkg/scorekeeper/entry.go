package scorekeeper

// SubmitBids records every player's bid and locks the bidding phase
// Players missing from the map default to a bid of zero. The submission is
// refused, leaving the game untouched, when the bids add up to the round's
// trick count, unless the round number is one, which is exempt
func (g *Game) SubmitBids(bids map[string]int) error {
	if g.Phase() != PhaseBidding {
		return ErrNotAwaitingBids
	}

	if err := g.checkEntries(bids); err != nil {
		return err
	}

	total := 0
	for _, player := range g.Players {
		total += bids[player.Name]
	}

	if total == g.CurrentRound.TotalTricks() && g.CurrentRound.Number != 1 {
		return ErrBidsEqualTricks
	}

	for _, player := range g.Players {
		bid := bids[player.Name]
		player.CurrentRound.Bid = &bid
	}

	g.MidRound = true
	return nil
}

// SubmitActuals records the tricks every player actually took
// Players missing from the map default to zero. The submission is refused,
// leaving the game untouched, unless every trick in the round is accounted
// for. On success the bid phase for the next round is open; the caller
// advances with NextRound
func (g *Game) SubmitActuals(actuals map[string]int) error {
	if g.Phase() != PhaseActuals {
		return ErrNotAwaitingActuals
	}

	if err := g.checkEntries(actuals); err != nil {
		return err
	}

	total := 0
	for _, player := range g.Players {
		total += actuals[player.Name]
	}

	if total != g.CurrentRound.TotalTricks() {
		return ErrActualsMismatch
	}

	for _, player := range g.Players {
		actual := actuals[player.Name]
		player.CurrentRound.Actual = &actual
	}

	g.MidRound = false
	return nil
}

// checkEntries rejects unknown player names and negative amounts before any
// state is mutated
func (g *Game) checkEntries(amounts map[string]int) error {
	for name, amount := range amounts {
		if g.playerIndex(name) < 0 {
			return UnknownPlayerError(name)
		}

		if amount < 0 {
			return ErrNegativeAmount
		}
	}

	return nil
}

// EntryOrder returns the players rotated so the dealer is last
// This is the order bids and actuals are entered in at the table; the
// validation sums do not depend on it
func (g *Game) EntryOrder() []*Player {
	order := make([]*Player, 0, len(g.Players))
	if g.DealerIndex < 0 {
		return append(order, g.Players...)
	}

	for i := 1; i <= len(g.Players); i++ {
		order = append(order, g.Players[(g.DealerIndex+i)%len(g.Players)])
	}

	return order
}
