// Package storm implements the storage engine on a storm database over
// bbolt. Names are unique indexes, so duplicate detection happens in the
// database rather than in this code.
package storm

import (
	"errors"
	"fmt"

	"github.com/asdine/storm"
	"github.com/asdine/storm/codec/msgpack"
	"github.com/rs/xid"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

type engine struct {
	*storm.DB
}

// NewEngine opens (or creates) the database at path and returns a storage
// engine backed by it.
func NewEngine(path string) (store.Engine, error) {
	db, err := storm.Open(path, storm.Codec(msgpack.Codec))
	if err != nil {
		return nil, fmt.Errorf("unable to open storage engine: %w", err)
	}
	return &engine{db}, nil
}

type personRecord struct {
	ID   string `storm:"id"`
	Name string `storm:"unique"`
}

type playerRecord struct {
	PersonID string
	Number   int
}

type teamRecord struct {
	ID      string `storm:"id"`
	Name    string `storm:"unique"`
	Coaches []string
	Players []playerRecord
}

type gameRecord struct {
	TeamIDs [2]string
	Scored  bool
	Points  [2]int
}

type tournamentRecord struct {
	ID      string `storm:"id"`
	Name    string `storm:"unique"`
	TeamIDs []string
	Games   []gameRecord
}

func translate(err error) error {
	switch {
	case errors.Is(err, storm.ErrAlreadyExists):
		return store.ErrNameExists
	case errors.Is(err, storm.ErrNotFound):
		return store.ErrNotFound
	}
	return err
}

func (e *engine) CreatePerson(name string) (*models.Person, error) {
	rec := personRecord{ID: xid.New().String(), Name: name}
	if err := e.Save(&rec); err != nil {
		return nil, translate(err)
	}
	return e.hydratePerson(rec)
}

func (e *engine) GetPerson(name string) (*models.Person, error) {
	var rec personRecord
	if err := e.One("Name", name, &rec); err != nil {
		return nil, translate(err)
	}
	return e.hydratePerson(rec)
}

func (e *engine) hydratePerson(rec personRecord) (*models.Person, error) {
	id, err := xid.FromString(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt person record %q: %w", rec.ID, err)
	}
	person := models.NewPerson(rec.Name)
	person.ID = id
	return person, nil
}

func (e *engine) getPersonByID(id string) (*models.Person, error) {
	var rec personRecord
	if err := e.One("ID", id, &rec); err != nil {
		return nil, translate(err)
	}
	return e.hydratePerson(rec)
}

func (e *engine) CreateTeam(name string) (*models.Team, error) {
	rec := teamRecord{ID: xid.New().String(), Name: name}
	if err := e.Save(&rec); err != nil {
		return nil, translate(err)
	}
	return e.hydrateTeam(rec)
}

func (e *engine) GetTeam(name string) (*models.Team, error) {
	var rec teamRecord
	if err := e.One("Name", name, &rec); err != nil {
		return nil, translate(err)
	}
	return e.hydrateTeam(rec)
}

func (e *engine) getTeamByID(id string) (*models.Team, error) {
	var rec teamRecord
	if err := e.One("ID", id, &rec); err != nil {
		return nil, translate(err)
	}
	return e.hydrateTeam(rec)
}

// hydrateTeam rebuilds the roster through the same operations callers
// use, so a loaded team behaves exactly like a freshly built one.
func (e *engine) hydrateTeam(rec teamRecord) (*models.Team, error) {
	id, err := xid.FromString(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt team record %q: %w", rec.ID, err)
	}
	team := models.NewTeam(rec.Name)
	team.ID = id
	for _, coachID := range rec.Coaches {
		coach, err := e.getPersonByID(coachID)
		if err != nil {
			return nil, fmt.Errorf("coach %s of team %s: %w", coachID, rec.Name, err)
		}
		team.AddCoach(coach)
	}
	for _, p := range rec.Players {
		person, err := e.getPersonByID(p.PersonID)
		if err != nil {
			return nil, fmt.Errorf("player %s of team %s: %w", p.PersonID, rec.Name, err)
		}
		team.AddPlayer(person, p.Number)
	}
	return team, nil
}

func (e *engine) SaveTeam(team *models.Team) error {
	if team.ID == (xid.ID{}) {
		return fmt.Errorf("team %s has not been created yet", team.Name)
	}
	rec := teamRecord{ID: team.ID.String(), Name: team.Name}
	for _, coach := range team.Coaches() {
		if coach.ID == (xid.ID{}) {
			return fmt.Errorf("coach %s has not been created yet", coach.Name)
		}
		rec.Coaches = append(rec.Coaches, coach.ID.String())
	}
	for _, player := range team.Players() {
		if player.Person.ID == (xid.ID{}) {
			return fmt.Errorf("player %s has not been created yet", player.Person.Name)
		}
		rec.Players = append(rec.Players, playerRecord{
			PersonID: player.Person.ID.String(),
			Number:   player.Number,
		})
	}
	if err := e.Save(&rec); err != nil {
		return translate(err)
	}
	return nil
}

func (e *engine) CreateTournament(name string) (*models.Tournament, error) {
	rec := tournamentRecord{ID: xid.New().String(), Name: name}
	if err := e.Save(&rec); err != nil {
		return nil, translate(err)
	}
	return e.hydrateTournament(rec)
}

func (e *engine) GetTournament(name string) (*models.Tournament, error) {
	var rec tournamentRecord
	if err := e.One("Name", name, &rec); err != nil {
		return nil, translate(err)
	}
	return e.hydrateTournament(rec)
}

// hydrateTournament replays the stored graph through the tournament's own
// operations. The stored data already passed the invariants once, so a
// replay failure means the record is corrupt.
func (e *engine) hydrateTournament(rec tournamentRecord) (*models.Tournament, error) {
	id, err := xid.FromString(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt tournament record %q: %w", rec.ID, err)
	}
	tournament := models.NewTournament(rec.Name)
	tournament.ID = id

	teams := make(map[string]*models.Team, len(rec.TeamIDs))
	for _, teamID := range rec.TeamIDs {
		team, err := e.getTeamByID(teamID)
		if err != nil {
			return nil, fmt.Errorf("team %s of tournament %s: %w", teamID, rec.Name, err)
		}
		if err := tournament.AddTeam(team); err != nil {
			return nil, fmt.Errorf("corrupt tournament %s: %w", rec.Name, err)
		}
		teams[teamID] = team
	}
	for _, g := range rec.Games {
		team1, team2 := teams[g.TeamIDs[0]], teams[g.TeamIDs[1]]
		if team1 == nil || team2 == nil {
			return nil, fmt.Errorf("corrupt tournament %s: game references unknown team", rec.Name)
		}
		if err := tournament.AddGame(team1, team2); err != nil {
			return nil, fmt.Errorf("corrupt tournament %s: %w", rec.Name, err)
		}
		if g.Scored {
			if err := tournament.ScoreGame(team1, g.Points[0], team2, g.Points[1]); err != nil {
				return nil, fmt.Errorf("corrupt tournament %s: %w", rec.Name, err)
			}
		}
	}
	return tournament, nil
}

func (e *engine) SaveTournament(tournament *models.Tournament) error {
	if tournament.ID == (xid.ID{}) {
		return fmt.Errorf("tournament %s has not been created yet", tournament.Name)
	}
	rec := tournamentRecord{ID: tournament.ID.String(), Name: tournament.Name}
	for _, team := range tournament.Teams() {
		if team.ID == (xid.ID{}) {
			return fmt.Errorf("team %s has not been created yet", team.Name)
		}
		rec.TeamIDs = append(rec.TeamIDs, team.ID.String())
	}
	for _, game := range tournament.Games() {
		teams := game.Teams()
		g := gameRecord{TeamIDs: [2]string{teams[0].ID.String(), teams[1].ID.String()}}
		if game.HasScore() {
			points1, err := game.PointsFor(teams[0])
			if err != nil {
				return err
			}
			points2, err := game.PointsFor(teams[1])
			if err != nil {
				return err
			}
			g.Scored = true
			g.Points = [2]int{points1, points2}
		}
		rec.Games = append(rec.Games, g)
	}
	if err := e.Save(&rec); err != nil {
		return translate(err)
	}
	return nil
}

func (e *engine) Close() error {
	return e.DB.Close()
}
