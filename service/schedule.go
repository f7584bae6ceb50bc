package service

import (
	"github.com/sirupsen/logrus"
)

// ScheduleRoundRobin adds a game for every pair of enrolled teams that
// does not have one yet, so each pair plays exactly once. Pairs that
// already have a game are left alone, which makes rescheduling after
// late enrollments safe. Returns the number of games created.
func (s *TournamentService) ScheduleRoundRobin(tournamentName string) (int, error) {
	tournament, err := s.Get(tournamentName)
	if err != nil {
		return 0, err
	}
	teams := tournament.Teams()
	created := 0
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			if tournament.HasGameWithTeams(teams[i], teams[j]) {
				continue
			}
			if err := tournament.AddGame(teams[i], teams[j]); err != nil {
				return created, err
			}
			logrus.Debugf("scheduled %q vs %q in tournament %q", teams[i].Name, teams[j].Name, tournamentName)
			created++
		}
	}
	if created == 0 {
		return 0, nil
	}
	return created, s.store.SaveTournament(tournament)
}
