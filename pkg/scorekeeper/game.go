package scorekeeper

import (
	"strings"
	"time"
)

// minPlayers is the fewest players a game may start with
const minPlayers = 2

// deckSize limits how many cards can be dealt in the first round
const deckSize = 52

// Game is a single sitting of Guesstimate
// The schedule drains from RemainingRounds into CompletedRounds through
// CurrentRound; exactly one of CurrentRound or Completed holds once
// rounds have begun
type Game struct {
	ID              string    `json:"id"`
	Name            string    `json:"name,omitempty"`
	Date            time.Time `json:"date"`
	Players         []*Player `json:"players"`
	RemainingRounds []Round   `json:"remainingRounds"`
	CompletedRounds []Round   `json:"completedRounds"`
	CurrentRound    *Round    `json:"currentRound"`
	// MidRound is false while bids are open and true once they are locked
	MidRound bool `json:"midRound"`
	// DealerIndex is a seat index into Players, or -1 before a dealer is chosen
	DealerIndex   int  `json:"dealerIndex"`
	DownAndUp     bool `json:"setting_downAndUp"`
	StartNumCards int  `json:"setting_startNumCards"`
	Completed     bool `json:"gameCompleted"`
}

// NewGame returns an empty game ready to be populated with players and settings
func NewGame() *Game {
	return &Game{
		ID:              generateID(),
		Date:            time.Now(),
		Players:         make([]*Player, 0),
		RemainingRounds: make([]Round, 0),
		CompletedRounds: make([]Round, 0),
		DealerIndex:     -1,
	}
}

// NewGameFromPrevious starts a rematch with the previous game's players,
// settings, and schedule. The first round is started immediately
func NewGameFromPrevious(prev *Game, dealerName string) (*Game, error) {
	game := NewGame()
	game.Name = prev.Name

	for _, p := range prev.Players {
		game.Players = append(game.Players, NewPlayer(p.Name))
	}

	game.DownAndUp = prev.DownAndUp
	game.StartNumCards = prev.StartNumCards

	if err := game.SetDealerByName(dealerName); err != nil {
		return nil, err
	}

	// the previous game's played rounds become the new schedule
	game.RemainingRounds = append(game.RemainingRounds, prev.CompletedRounds...)
	if len(game.RemainingRounds) == 0 {
		return nil, ErrNoRoundsSelected
	}

	game.NextRound()
	return game, nil
}

// SetPlayers replaces the player list in seating order
// Names are validated and normalized; fails once the game has started
func (g *Game) SetPlayers(names []string) error {
	if g.HasStarted() {
		return ErrGameStarted
	}

	validated, err := ValidateNames(names)
	if err != nil {
		return err
	}

	players := make([]*Player, len(validated))
	for i, name := range validated {
		players[i] = NewPlayer(name)
	}

	g.Players = players
	return nil
}

// SetName sets an optional label for the game
func (g *Game) SetName(name string) {
	g.Name = strings.TrimSpace(name)
}

// SetDate sets when the game was played
func (g *Game) SetDate(date time.Time) {
	g.Date = date
}

// SetOptions sets the pre-game settings
// The starting card count must leave every player at least one card and
// cannot exceed the deck
func (g *Game) SetOptions(opts Options) error {
	if g.HasStarted() {
		return ErrGameStarted
	}

	if len(g.Players) < minPlayers {
		return ErrNotEnoughPlayers
	}

	if max := MaxStartCards(len(g.Players)); opts.StartNumCards < 1 || opts.StartNumCards > max {
		return CardCountError{Cards: opts.StartNumCards, Max: max}
	}

	g.DownAndUp = opts.DownAndUp
	g.StartNumCards = opts.StartNumCards
	return nil
}

// SetDealer sets the dealer by seat index
func (g *Game) SetDealer(index int) error {
	if index < 0 || index >= len(g.Players) {
		return ErrDealerNotFound
	}

	g.DealerIndex = index
	return nil
}

// SetDealerByName sets the dealer by player name
func (g *Game) SetDealerByName(name string) error {
	for i, p := range g.Players {
		if p.Name == name {
			g.DealerIndex = i
			return nil
		}
	}

	return ErrDealerNotFound
}

// Dealer returns the current dealer, or nil before one is chosen
func (g *Game) Dealer() *Player {
	if g.DealerIndex < 0 || g.DealerIndex >= len(g.Players) {
		return nil
	}

	return g.Players[g.DealerIndex]
}

// SetSchedule loads the round schedule and starts the first round
func (g *Game) SetSchedule(rounds []Round) error {
	if g.HasStarted() {
		return ErrGameStarted
	}

	if len(rounds) == 0 {
		return ErrNoRoundsSelected
	}

	if len(g.Players) < minPlayers {
		return ErrNotEnoughPlayers
	}

	if g.Dealer() == nil {
		return ErrNoDealer
	}

	g.RemainingRounds = append(make([]Round, 0, len(rounds)), rounds...)
	g.NextRound()
	return nil
}

// HasStarted returns true once the first round has been dealt
func (g *Game) HasStarted() bool {
	return g.CurrentRound != nil || g.Completed || len(g.CompletedRounds) > 0
}

// MaxStartCards is the most cards that can be dealt per player in round one
func MaxStartCards(numPlayers int) int {
	if numPlayers < 1 {
		return deckSize
	}

	return deckSize / numPlayers
}

// playerIndex returns the seat index for a player name, or -1
func (g *Game) playerIndex(name string) int {
	for i, p := range g.Players {
		if p.Name == name {
			return i
		}
	}

	return -1
}
