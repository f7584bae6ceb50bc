package models

// Tally aggregates one team's outcomes across a tournament. It is never
// stored; standings recompute it from the current games.
type Tally struct {
	TeamName string
	Wins     int
	Losses   int
	Ties     int
	Unscored int
}

// NewTally counts occurrences of each outcome kind.
func NewTally(teamName string, outcomes []Outcome) Tally {
	tally := Tally{TeamName: teamName}
	for _, o := range outcomes {
		switch o {
		case Win:
			tally.Wins++
		case Loss:
			tally.Losses++
		case Tie:
			tally.Ties++
		case Unscored:
			tally.Unscored++
		}
	}
	return tally
}

// Total is the weighted standings score: 3 per win, 2 per tie, 1 per
// loss, 0 per unscored game.
func (t Tally) Total() int {
	return t.Wins*Win.Weight() +
		t.Ties*Tie.Weight() +
		t.Losses*Loss.Weight() +
		t.Unscored*Unscored.Weight()
}
