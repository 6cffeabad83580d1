package scorekeeper

import (
	"strings"
	"unicode"
)

// Player is a participant in a game
// Rounds is append-only with one entry per round ever started; CurrentRound
// always aliases the last entry while a round is in progress
type Player struct {
	Name         string         `json:"name"`
	TotalScore   int            `json:"totalScore"`
	Rounds       []*PlayerRound `json:"rounds"`
	CurrentRound *PlayerRound   `json:"currentRound"`
}

// NewPlayer returns a new player with no history
func NewPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Rounds: make([]*PlayerRound, 0),
	}
}

// NormalizeName trims surrounding whitespace and upper-cases the first letter
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ValidateNames checks a proposed player list
// Blank entries are ignored; at least two named players are required and
// duplicate checking is case-insensitive
func ValidateNames(names []string) ([]string, error) {
	validated := make([]string, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		name = NormalizeName(name)
		if name == "" {
			continue
		}

		if seen[strings.ToLower(name)] {
			return nil, ErrDuplicatePlayerName
		}

		seen[strings.ToLower(name)] = true
		validated = append(validated, name)
	}

	if len(validated) < minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	return validated, nil
}
