package scorekeeper

import (
	"errors"
	"fmt"
)

// ErrNotEnoughPlayers is returned when fewer than two players are named
var ErrNotEnoughPlayers = errors.New("there must be at least two players")

// ErrDuplicatePlayerName is returned when two players share a name
var ErrDuplicatePlayerName = errors.New("duplicate player names are not allowed")

// ErrGameStarted prevents setup changes after the first round has started
var ErrGameStarted = errors.New("the game has already started")

// ErrGameNotStarted is returned when play is attempted before the first round
var ErrGameNotStarted = errors.New("the game has not started")

// ErrGameCompleted is returned when play is attempted on a finished game
var ErrGameCompleted = errors.New("the game is over")

// ErrNoDealer is returned when a round starts without a dealer selected
var ErrNoDealer = errors.New("a dealer must be selected")

// ErrDealerNotFound is returned when the named dealer is not a player
var ErrDealerNotFound = errors.New("the dealer must be one of the players")

// ErrNoRoundsSelected is returned when a schedule ends up empty
var ErrNoRoundsSelected = errors.New("at least one round must be selected")

// ErrNoPriorRound prevents restoring a round that does not exist
var ErrNoPriorRound = errors.New("there is no prior round to restore")

// ErrNotAwaitingBids is returned when bids arrive outside the bidding phase
var ErrNotAwaitingBids = errors.New("the game is not awaiting bids")

// ErrNotAwaitingActuals is returned when actuals arrive before bids are locked
var ErrNotAwaitingActuals = errors.New("the game is not awaiting actual tricks")

// ErrBidsEqualTricks enforces the no-exact-total bidding rule
var ErrBidsEqualTricks = errors.New("total bids cannot equal the number of tricks in the round")

// ErrActualsMismatch requires every trick in the round to be accounted for
var ErrActualsMismatch = errors.New("actual tricks must add up to the number of tricks in the round")

// ErrNegativeAmount rejects negative bid or actual values
var ErrNegativeAmount = errors.New("bids and tricks taken cannot be negative")

// UnknownPlayerError is returned when an entry names a player not in the game
type UnknownPlayerError string

func (u UnknownPlayerError) Error() string {
	return fmt.Sprintf("no player named %q in this game", string(u))
}

// CardCountError is returned when the starting card count cannot be dealt
type CardCountError struct {
	Cards, Max int
}

func (c CardCountError) Error() string {
	return fmt.Sprintf("expected 1–%d starting cards, got %d", c.Max, c.Cards)
}
