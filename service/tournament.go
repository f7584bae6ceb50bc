package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

type TournamentService struct {
	store store.Engine
	teams *TeamService
}

func NewTournamentService(engine store.Engine, teams *TeamService) *TournamentService {
	return &TournamentService{store: engine, teams: teams}
}

func (s *TournamentService) Create(name string) (*models.Tournament, error) {
	tournament, err := s.store.CreateTournament(name)
	if err != nil {
		return nil, fmt.Errorf("create tournament %q: %w", name, err)
	}
	return tournament, nil
}

func (s *TournamentService) Get(name string) (*models.Tournament, error) {
	tournament, err := s.store.GetTournament(name)
	if err != nil {
		return nil, fmt.Errorf("get tournament %q: %w", name, err)
	}
	return tournament, nil
}

// AddTeam enrolls the named team in the tournament. The tournament must
// exist; the team is created when it is not known yet.
func (s *TournamentService) AddTeam(teamName, tournamentName string) error {
	tournament, err := s.Get(tournamentName)
	if err != nil {
		return err
	}
	team, err := s.teams.GetOrCreate(teamName)
	if err != nil {
		return err
	}
	if err := tournament.AddTeam(team); err != nil {
		return fmt.Errorf("team %q in tournament %q: %w", teamName, tournamentName, err)
	}
	return s.store.SaveTournament(tournament)
}

// ensureTeam enrolls the team when it is not in the tournament yet. An
// already enrolled team is skipped silently, which makes the
// enroll-then-add-game sequence idempotent.
func (s *TournamentService) ensureTeam(tournament *models.Tournament, team *models.Team) error {
	if tournament.HasTeam(team) {
		return nil
	}
	logrus.Debugf("enrolling team %q in tournament %q", team.Name, tournament.Name)
	return tournament.AddTeam(team)
}

// AddGame creates a game between the two named teams. The tournament must
// exist; missing teams are created and missing enrollments added before
// the game itself.
func (s *TournamentService) AddGame(team1Name, team2Name, tournamentName string) error {
	tournament, err := s.Get(tournamentName)
	if err != nil {
		return err
	}
	if team1Name == team2Name {
		return fmt.Errorf("game between %q and %q: %w", team1Name, team2Name, models.ErrInvalidGame)
	}
	team1, err := s.teams.GetOrCreate(team1Name)
	if err != nil {
		return err
	}
	team2, err := s.teams.GetOrCreate(team2Name)
	if err != nil {
		return err
	}
	if err := s.ensureTeam(tournament, team1); err != nil {
		return err
	}
	if err := s.ensureTeam(tournament, team2); err != nil {
		return err
	}
	if err := tournament.AddGame(team1, team2); err != nil {
		return fmt.Errorf("game between %q and %q in tournament %q: %w", team1Name, team2Name, tournamentName, err)
	}
	return s.store.SaveTournament(tournament)
}

// ScoreGame records the score of an existing game. Unlike AddGame this
// creates nothing: the tournament, both teams and the game must all
// exist already.
func (s *TournamentService) ScoreGame(team1Name string, team1Points int, team2Name string, team2Points int, tournamentName string) error {
	tournament, err := s.Get(tournamentName)
	if err != nil {
		return err
	}
	team1, err := s.teams.Get(team1Name)
	if err != nil {
		return err
	}
	team2, err := s.teams.Get(team2Name)
	if err != nil {
		return err
	}
	if err := tournament.ScoreGame(team1, team1Points, team2, team2Points); err != nil {
		return fmt.Errorf("score game between %q and %q in tournament %q: %w", team1Name, team2Name, tournamentName, err)
	}
	return s.store.SaveTournament(tournament)
}

// Standings returns the tournament's ranked tally table.
func (s *TournamentService) Standings(tournamentName string) ([]models.Tally, error) {
	tournament, err := s.Get(tournamentName)
	if err != nil {
		return nil, err
	}
	standings := tournament.Standings()
	logrus.Debugf("tournament %q has %d teams in standings", tournamentName, len(standings))
	return standings, nil
}
