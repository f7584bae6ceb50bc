// Package store defines the storage engine backing the tracker. Persons,
// teams and tournaments are keyed by their unique names; a tournament is
// saved and reloaded as its full graph of teams, games and scores.
package store

import (
	"errors"

	"github.com/pitchside/pitchside/models"
)

var (
	// ErrNameExists is returned when creating an entity whose name is
	// already taken.
	ErrNameExists = errors.New("name already exists")

	// ErrNotFound is returned when no entity has the given name.
	ErrNotFound = errors.New("not found")
)

// Engine is a backing that provides storage for the tracked entities.
type Engine interface {
	CreatePerson(name string) (*models.Person, error)
	GetPerson(name string) (*models.Person, error)

	CreateTeam(name string) (*models.Team, error)
	GetTeam(name string) (*models.Team, error)
	SaveTeam(team *models.Team) error

	CreateTournament(name string) (*models.Tournament, error)
	GetTournament(name string) (*models.Tournament, error)
	SaveTournament(tournament *models.Tournament) error

	Close() error
}
