package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

type TeamService struct {
	store   store.Engine
	persons *PersonService
}

func NewTeamService(engine store.Engine, persons *PersonService) *TeamService {
	return &TeamService{store: engine, persons: persons}
}

func (s *TeamService) Create(name string) (*models.Team, error) {
	team, err := s.store.CreateTeam(name)
	if err != nil {
		return nil, fmt.Errorf("create team %q: %w", name, err)
	}
	return team, nil
}

func (s *TeamService) Get(name string) (*models.Team, error) {
	team, err := s.store.GetTeam(name)
	if err != nil {
		return nil, fmt.Errorf("get team %q: %w", name, err)
	}
	return team, nil
}

// GetOrCreate resolves a team name, creating the team when it is not
// known yet.
func (s *TeamService) GetOrCreate(name string) (*models.Team, error) {
	team, err := s.store.GetTeam(name)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get team %q: %w", name, err)
	}
	logrus.Debugf("team %q not found, creating", name)
	return s.Create(name)
}

// AddCoach puts the person on the team's coaching staff. Unknown teams and
// persons are created on the fly; a coach already on the team is an error.
func (s *TeamService) AddCoach(personName, teamName string) error {
	team, err := s.GetOrCreate(teamName)
	if err != nil {
		return err
	}
	coach, err := s.persons.GetOrCreate(personName)
	if err != nil {
		return err
	}
	if team.HasCoach(coach) {
		return fmt.Errorf("coach %q on team %q: %w", personName, teamName, models.ErrCoachAlreadyOnTeam)
	}
	team.AddCoach(coach)
	return s.store.SaveTeam(team)
}

// AddPlayer puts the person on the team's roster under the given jersey
// number. Unknown teams and persons are created on the fly. A person may
// appear on the roster once, and a number may be worn by one player.
func (s *TeamService) AddPlayer(personName, teamName string, number int) error {
	team, err := s.GetOrCreate(teamName)
	if err != nil {
		return err
	}
	person, err := s.persons.GetOrCreate(personName)
	if err != nil {
		return err
	}
	if team.HasPlayer(person) {
		return fmt.Errorf("player %q on team %q: %w", personName, teamName, models.ErrPlayerAlreadyOnTeam)
	}
	if team.HasPlayerWithNumber(number) {
		return fmt.Errorf("number %d on team %q: %w", number, teamName, models.ErrNumberAlreadyInUse)
	}
	team.AddPlayer(person, number)
	return s.store.SaveTeam(team)
}
