package models

import (
	"sort"

	"github.com/rs/xid"
)

// Tournament owns its games and enforces the fixture graph rules: a team
// is enrolled at most once, a pair of teams plays at most once, and no
// team plays itself. Teams are shared references; games live and die with
// the tournament.
type Tournament struct {
	ID   xid.ID
	Name string

	teams []*Team
	games []*Game
}

func NewTournament(name string) *Tournament {
	return &Tournament{Name: name}
}

func (t *Tournament) Equals(other *Tournament) bool {
	if other == nil {
		return false
	}
	if t.ID != (xid.ID{}) && other.ID != (xid.ID{}) {
		return t.ID == other.ID
	}
	return t.Name == other.Name
}

// AddTeam enrolls a team. It does not get-or-create: the caller resolves
// names to teams first.
func (t *Tournament) AddTeam(team *Team) error {
	if t.HasTeam(team) {
		return ErrTeamAlreadyInTournament
	}
	t.teams = append(t.teams, team)
	return nil
}

func (t *Tournament) HasTeam(team *Team) bool {
	for _, enrolled := range t.teams {
		if enrolled.Equals(team) {
			return true
		}
	}
	return false
}

// Teams returns the enrolled teams in enrollment order.
func (t *Tournament) Teams() []*Team {
	out := make([]*Team, len(t.teams))
	copy(out, t.teams)
	return out
}

// AddGame creates a game between two enrolled-or-not teams. Enrollment is
// not implied here; the service layer enrolls missing teams first so the
// side effects stay auditable.
func (t *Tournament) AddGame(team1, team2 *Team) error {
	if t.HasGameWithTeams(team1, team2) {
		return ErrGameAlreadyInTournament
	}
	game, err := NewGame(team1, team2)
	if err != nil {
		return err
	}
	t.games = append(t.games, game)
	return nil
}

// HasGameWithTeams is pair-order independent: a game added as (A, B) is
// found as (B, A).
func (t *Tournament) HasGameWithTeams(team1, team2 *Team) bool {
	for _, game := range t.games {
		if game.HasTeam(team1) && game.HasTeam(team2) {
			return true
		}
	}
	return false
}

func (t *Tournament) GetGame(team1, team2 *Team) (*Game, error) {
	for _, game := range t.games {
		if game.HasTeam(team1) && game.HasTeam(team2) {
			return game, nil
		}
	}
	return nil, ErrGameDoesNotExist
}

// ScoreGame records the score of the game between the two teams.
func (t *Tournament) ScoreGame(team1 *Team, team1Points int, team2 *Team, team2Points int) error {
	game, err := t.GetGame(team1, team2)
	if err != nil {
		return err
	}
	return game.SetScore(team1, team1Points, team2, team2Points)
}

// Games returns all games in insertion order.
func (t *Tournament) Games() []*Game {
	out := make([]*Game, len(t.games))
	copy(out, t.games)
	return out
}

// GamesForTeam returns the games that include team, in insertion order.
func (t *Tournament) GamesForTeam(team *Team) []*Game {
	var out []*Game
	for _, game := range t.games {
		if game.HasTeam(team) {
			out = append(out, game)
		}
	}
	return out
}

func (t *Tournament) OutcomesForTeam(team *Team) []Outcome {
	games := t.GamesForTeam(team)
	outcomes := make([]Outcome, len(games))
	for i, game := range games {
		outcomes[i] = game.Outcome(team)
	}
	return outcomes
}

// Standings tallies every enrolled team and sorts descending by total.
// The sort is stable, so teams with equal totals keep enrollment order.
func (t *Tournament) Standings() []Tally {
	tallies := make([]Tally, len(t.teams))
	for i, team := range t.teams {
		tallies[i] = NewTally(team.Name, t.OutcomesForTeam(team))
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Total() > tallies[j].Total()
	})
	return tallies
}
