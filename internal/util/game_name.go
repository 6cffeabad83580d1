package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Friendly", "Heated", "Casual", "Cutthroat", "Classic", "Cozy", "Rowdy",
	"Quiet", "Epic", "Weekly", "Rainy", "Sunny", "Late", "Lazy", "Lively",
	"Grand", "Spirited", "Marathon", "Lightning", "Midnight",
}

var occasions = []string{
	"Game Night", "Showdown", "Rematch", "Session", "Tournament", "Face-Off",
	"Card Night", "Kitchen Table", "Round Robin", "Standoff", "Gathering",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// RandomGameName suggests a label for a game that was created without one
func RandomGameName() string {
	adjective := adjectives[random.Intn(len(adjectives))]
	occasion := occasions[random.Intn(len(occasions))]

	return fmt.Sprintf("%s %s", adjective, occasion)
}
