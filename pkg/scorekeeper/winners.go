package scorekeeper

import "sort"

// FindWinners returns every player tied for the highest total score
// Panics on an empty player list; callers must not ask for winners of a game
// nobody played
func FindWinners(players []*Player) []*Player {
	if len(players) == 0 {
		panic("scorekeeper: cannot find winners without players")
	}

	highest := players[0].TotalScore
	for _, p := range players[1:] {
		if p.TotalScore > highest {
			highest = p.TotalScore
		}
	}

	winners := make([]*Player, 0, 1)
	for _, p := range players {
		if p.TotalScore == highest {
			winners = append(winners, p)
		}
	}

	return winners
}

// RecommendedDealers suggests a first dealer for a rematch, one per winner
// The seat is chosen so the previous winner deals the final two-card round
// of the new game. Panics when players or winners are empty, or when a
// winner is not seated in the player list
func RecommendedDealers(players, winners []*Player, startNumCards int) []*Player {
	if len(players) == 0 || len(winners) == 0 {
		panic("scorekeeper: players and winners must not be empty")
	}

	dealers := make([]*Player, 0, len(winners))
	for _, winner := range winners {
		winnerIndex := -1
		for i, p := range players {
			if p.Name == winner.Name {
				winnerIndex = i
				break
			}
		}

		if winnerIndex < 0 {
			panic("scorekeeper: winner is not in the player list")
		}

		// normalize twice so large card counts cannot leave the offset negative
		dealerIndex := (winnerIndex - (startNumCards - 2)) % len(players)
		dealerIndex = (dealerIndex + len(players)) % len(players)
		dealers = append(dealers, players[dealerIndex])
	}

	return dealers
}

// Podium groups players into the top three places with ties sharing a place
type Podium struct {
	First  []*Player `json:"first"`
	Second []*Player `json:"second"`
	Third  []*Player `json:"third"`
}

// BuildPodium computes final placements from total scores
// Second place is only awarded when first is not shared; third requires more
// than two players and no more than two ahead of it
func BuildPodium(players []*Player) Podium {
	if len(players) == 0 {
		panic("scorekeeper: cannot build a podium without players")
	}

	sorted := append(make([]*Player, 0, len(players)), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})

	podium := Podium{
		First:  make([]*Player, 0, 1),
		Second: make([]*Player, 0),
		Third:  make([]*Player, 0),
	}

	index := 0
	for index < len(sorted) && sorted[index].TotalScore == sorted[0].TotalScore {
		podium.First = append(podium.First, sorted[index])
		index++
	}

	if len(podium.First) == 1 && index < len(sorted) {
		score := sorted[index].TotalScore
		for index < len(sorted) && sorted[index].TotalScore == score {
			podium.Second = append(podium.Second, sorted[index])
			index++
		}
	}

	awardThird := (len(podium.First) == 1 && len(podium.Second) == 1) || len(podium.First) == 2
	if awardThird && len(players) > 2 && index < len(sorted) {
		score := sorted[index].TotalScore
		for index < len(sorted) && sorted[index].TotalScore == score {
			podium.Third = append(podium.Third, sorted[index])
			index++
		}
	}

	return podium
}
