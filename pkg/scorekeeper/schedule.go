package scorekeeper

// BuildSchedule constructs the round schedule for the given settings
// The descending leg runs from StartNumCards down to one; if DownAndUp is set
// an ascending leg from one back up to StartNumCards follows. Each leg's
// selection map may exclude individual round numbers (a nil map keeps the
// whole leg). At least one round must survive the selection
func BuildSchedule(opts Options, downSelected, upSelected map[int]bool) ([]Round, error) {
	if opts.StartNumCards < 1 {
		return nil, CardCountError{Cards: opts.StartNumCards, Max: deckSize}
	}

	rounds := make([]Round, 0, opts.StartNumCards*2)
	for i := opts.StartNumCards; i >= 1; i-- {
		if selected(downSelected, i) {
			rounds = append(rounds, Round{Number: i, GoingDown: true})
		}
	}

	if opts.DownAndUp {
		for i := 1; i <= opts.StartNumCards; i++ {
			if selected(upSelected, i) {
				rounds = append(rounds, Round{Number: i, GoingDown: false})
			}
		}
	}

	if len(rounds) == 0 {
		return nil, ErrNoRoundsSelected
	}

	return rounds, nil
}

func selected(selection map[int]bool, number int) bool {
	if selection == nil {
		return true
	}

	return selection[number]
}
