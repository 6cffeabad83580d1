package scorekeeper

// Options are the settings chosen before the first round is dealt
type Options struct {
	// DownAndUp appends an ascending leg after the descending leg
	DownAndUp bool
	// StartNumCards is the number of cards dealt in the first round
	StartNumCards int
}

// DefaultOptions returns the default settings for a four-player game
func DefaultOptions() Options {
	return Options{
		DownAndUp:     false,
		StartNumCards: 7,
	}
}
