package models

// Outcome is one game seen from one team's side.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Tie
	Unscored
)

// Weight is the standings value of an outcome.
func (o Outcome) Weight() int {
	switch o {
	case Win:
		return 3
	case Tie:
		return 2
	case Loss:
		return 1
	}
	return 0
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Loss:
		return "LOSS"
	case Tie:
		return "TIE"
	}
	return "UNSCORED"
}

// Game is a single fixture between two distinct teams. The pair is
// unordered: every lookup treats (A, B) and (B, A) the same. A game is
// owned by its tournament and created through Tournament.AddGame.
type Game struct {
	teams  [2]*Team
	scored bool
	points [2]int
}

// NewGame pairs two teams. Returns ErrInvalidGame when both are the same
// team.
func NewGame(team1, team2 *Team) (*Game, error) {
	if team1.Equals(team2) {
		return nil, ErrInvalidGame
	}
	return &Game{teams: [2]*Team{team1, team2}}, nil
}

func (g *Game) Teams() []*Team {
	return []*Team{g.teams[0], g.teams[1]}
}

func (g *Game) HasTeam(team *Team) bool {
	return g.teams[0].Equals(team) || g.teams[1].Equals(team)
}

// HasScore reports whether both point values have been recorded. Scores
// are set together, so a partially scored game cannot exist.
func (g *Game) HasScore() bool {
	return g.scored
}

func (g *Game) indexOf(team *Team) int {
	for i, t := range g.teams {
		if t.Equals(team) {
			return i
		}
	}
	return -1
}

// PointsFor returns the points recorded for team.
func (g *Game) PointsFor(team *Team) (int, error) {
	i := g.indexOf(team)
	if i < 0 {
		return 0, ErrTeamNotInGame
	}
	if !g.scored {
		return 0, ErrGameNotScored
	}
	return g.points[i], nil
}

// PointsForOpponent returns the points recorded for the other team in the
// pair.
func (g *Game) PointsForOpponent(team *Team) (int, error) {
	i := g.indexOf(team)
	if i < 0 {
		return 0, ErrTeamNotInGame
	}
	if !g.scored {
		return 0, ErrGameNotScored
	}
	return g.points[1-i], nil
}

// SetScore records both point values together. Validation happens before
// any write, so a rejected score leaves a previous one untouched.
// Rescoring a game overwrites both values.
func (g *Game) SetScore(team1 *Team, team1Points int, team2 *Team, team2Points int) error {
	if team1Points < 0 || team2Points < 0 {
		return ErrInvalidScore
	}
	i1 := g.indexOf(team1)
	i2 := g.indexOf(team2)
	if i1 < 0 || i2 < 0 || i1 == i2 {
		return ErrTeamNotInGame
	}
	g.points[i1] = team1Points
	g.points[i2] = team2Points
	g.scored = true
	return nil
}

// Outcome reports the game result from team's perspective. It is total:
// an unscored game, or a team that is not in this game, yields Unscored
// rather than an error.
func (g *Game) Outcome(team *Team) Outcome {
	points, err := g.PointsFor(team)
	if err != nil {
		return Unscored
	}
	opponent, err := g.PointsForOpponent(team)
	if err != nil {
		return Unscored
	}
	switch {
	case points == opponent:
		return Tie
	case points > opponent:
		return Win
	default:
		return Loss
	}
}
