package scorekeeper

// Round is a single entry in a game's round schedule
// Rounds with the same number but opposite directions are distinct, which
// allows a number to repeat in down-and-up mode
type Round struct {
	Number    int  `json:"roundNumber"`
	GoingDown bool `json:"goingDown"`
}

// Equal returns true if the rounds have the same number and direction
func (r Round) Equal(other Round) bool {
	return r.Number == other.Number && r.GoingDown == other.GoingDown
}

// TotalTricks returns the number of tricks available in the round
func (r Round) TotalTricks() int {
	return r.Number
}
