package scorekeeper

// Phase is the game's position in its lifecycle
type Phase int

// Phase constants
const (
	PhaseNotStarted Phase = iota
	PhaseBidding
	PhaseActuals
	PhaseCompleted
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "notStarted"
	case PhaseBidding:
		return "bidding"
	case PhaseActuals:
		return "actuals"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Phase derives the lifecycle phase from the round state
// The distinction between a game that never started and one that finished is
// explicit here rather than inferred from a nil current round
func (g *Game) Phase() Phase {
	switch {
	case g.Completed:
		return PhaseCompleted
	case g.CurrentRound == nil:
		return PhaseNotStarted
	case g.MidRound:
		return PhaseActuals
	default:
		return PhaseBidding
	}
}

// State is the client-safe view of a game
type State struct {
	Game       *Game    `json:"game"`
	Phase      string   `json:"phase"`
	Dealer     string   `json:"dealer,omitempty"`
	EntryOrder []string `json:"entryOrder"`
	// the fields below are only populated once the game is complete
	Winners            []string `json:"winners,omitempty"`
	MultipleWinners    bool     `json:"multipleWinners,omitempty"`
	RecommendedDealers []string `json:"recommendedDealers,omitempty"`
	Podium             *Podium  `json:"podium,omitempty"`
}

// State returns the current view of the game
func (g *Game) State() *State {
	state := &State{
		Game:       g,
		Phase:      g.Phase().String(),
		EntryOrder: playerNames(g.EntryOrder()),
	}

	if dealer := g.Dealer(); dealer != nil {
		state.Dealer = dealer.Name
	}

	if g.Completed && len(g.Players) > 0 {
		winners := FindWinners(g.Players)
		state.Winners = playerNames(winners)
		state.MultipleWinners = len(winners) > 1

		podium := BuildPodium(g.Players)
		state.Podium = &podium

		// a dealer recommendation only makes sense after a multi-round game
		if len(g.CompletedRounds) > 1 {
			state.RecommendedDealers = playerNames(RecommendedDealers(g.Players, winners, g.StartNumCards))
		}
	}

	return state
}

func playerNames(players []*Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	return names
}
