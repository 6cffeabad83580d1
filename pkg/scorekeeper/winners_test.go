package scorekeeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPlayers(scores map[string]int, names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name)
		players[i].TotalScore = scores[name]
	}

	return players
}

func TestFindWinners(t *testing.T) {
	players := testPlayers(map[string]int{"Alice": 42, "Bob": 17, "Carol": 30}, "Alice", "Bob", "Carol")
	assert.Equal(t, []string{"Alice"}, playerNames(FindWinners(players)))

	players = testPlayers(map[string]int{"Alice": 30, "Bob": 17, "Carol": 30}, "Alice", "Bob", "Carol")
	assert.Equal(t, []string{"Alice", "Carol"}, playerNames(FindWinners(players)))

	assert.Panics(t, func() {
		FindWinners(nil)
	})
}

func TestRecommendedDealers(t *testing.T) {
	players := testPlayers(map[string]int{"Dave": 40}, "Alice", "Bob", "Carol", "Dave")

	// the winner should end up dealing the two-card round of the rematch
	dealers := RecommendedDealers(players, []*Player{players[3]}, 4)
	assert.Equal(t, []string{"Bob"}, playerNames(dealers))

	// a start count larger than the table wraps cleanly
	dealers = RecommendedDealers(players, []*Player{players[0]}, 7)
	assert.Equal(t, []string{"Dave"}, playerNames(dealers))

	// one recommendation per tied winner
	dealers = RecommendedDealers(players, []*Player{players[0], players[1]}, 2)
	assert.Equal(t, []string{"Alice", "Bob"}, playerNames(dealers))

	assert.Panics(t, func() {
		RecommendedDealers(players, nil, 4)
	})
	assert.Panics(t, func() {
		RecommendedDealers(players, []*Player{NewPlayer("Zed")}, 4)
	})
}

func TestBuildPodium(t *testing.T) {
	players := testPlayers(map[string]int{"Alice": 40, "Bob": 30, "Carol": 20, "Dave": 10}, "Alice", "Bob", "Carol", "Dave")
	podium := BuildPodium(players)
	assert.Equal(t, []string{"Alice"}, playerNames(podium.First))
	assert.Equal(t, []string{"Bob"}, playerNames(podium.Second))
	assert.Equal(t, []string{"Carol"}, playerNames(podium.Third))
}

func TestBuildPodium_ties(t *testing.T) {
	// a shared first place leaves second empty
	players := testPlayers(map[string]int{"Alice": 40, "Bob": 40, "Carol": 20, "Dave": 10}, "Alice", "Bob", "Carol", "Dave")
	podium := BuildPodium(players)
	assert.Equal(t, []string{"Alice", "Bob"}, playerNames(podium.First))
	assert.Empty(t, podium.Second)
	assert.Equal(t, []string{"Carol"}, playerNames(podium.Third))

	// three tied for first fill the podium on their own
	players = testPlayers(map[string]int{"Alice": 40, "Bob": 40, "Carol": 40, "Dave": 10}, "Alice", "Bob", "Carol", "Dave")
	podium = BuildPodium(players)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, playerNames(podium.First))
	assert.Empty(t, podium.Second)
	assert.Empty(t, podium.Third)

	// a tie for second blocks third
	players = testPlayers(map[string]int{"Alice": 40, "Bob": 30, "Carol": 30, "Dave": 10}, "Alice", "Bob", "Carol", "Dave")
	podium = BuildPodium(players)
	assert.Equal(t, []string{"Alice"}, playerNames(podium.First))
	assert.Equal(t, []string{"Bob", "Carol"}, playerNames(podium.Second))
	assert.Empty(t, podium.Third)
}

func TestBuildPodium_twoPlayers(t *testing.T) {
	players := testPlayers(map[string]int{"Alice": 40, "Bob": 30}, "Alice", "Bob")
	podium := BuildPodium(players)
	assert.Equal(t, []string{"Alice"}, playerNames(podium.First))
	assert.Equal(t, []string{"Bob"}, playerNames(podium.Second))
	assert.Empty(t, podium.Third)

	assert.Panics(t, func() {
		BuildPodium(nil)
	})
}
