package storm

import (
	"path/filepath"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

func newTestEngine(t *testing.T) store.Engine {
	t.Helper()
	engine, err := NewEngine(filepath.Join(t.TempDir(), "pitchside.db"))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestEnginePersons(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.GetPerson("Pat")
	assert.ErrorIs(t, err, store.ErrNotFound)

	created, err := engine.CreatePerson("Pat")
	require.NoError(t, err)
	assert.Equal(t, "Pat", created.Name)
	assert.NotEqual(t, xid.ID{}, created.ID)

	got, err := engine.GetPerson("Pat")
	require.NoError(t, err)
	assert.True(t, got.Equals(created))
	assert.Equal(t, created.ID, got.ID)

	_, err = engine.CreatePerson("Pat")
	assert.ErrorIs(t, err, store.ErrNameExists)
}

func TestEngineTeams(t *testing.T) {
	engine := newTestEngine(t)

	team, err := engine.CreateTeam("Reds")
	require.NoError(t, err)
	assert.NotEqual(t, xid.ID{}, team.ID)

	_, err = engine.CreateTeam("Reds")
	assert.ErrorIs(t, err, store.ErrNameExists)

	_, err = engine.GetTeam("Blues")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEngineTeamRosterRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	team, err := engine.CreateTeam("Reds")
	require.NoError(t, err)
	coach, err := engine.CreatePerson("Coach")
	require.NoError(t, err)
	striker, err := engine.CreatePerson("Striker")
	require.NoError(t, err)
	keeper, err := engine.CreatePerson("Keeper")
	require.NoError(t, err)

	team.AddCoach(coach)
	team.AddPlayer(striker, 9)
	team.AddPlayer(keeper, 1)
	require.NoError(t, engine.SaveTeam(team))

	loaded, err := engine.GetTeam("Reds")
	require.NoError(t, err)
	assert.Equal(t, team.ID, loaded.ID)
	assert.True(t, loaded.HasCoach(coach))
	assert.True(t, loaded.HasPlayer(striker))
	assert.True(t, loaded.HasPlayerWithNumber(9))
	assert.True(t, loaded.HasPlayerWithNumber(1))
	assert.False(t, loaded.HasPlayerWithNumber(7))

	players := loaded.Players()
	require.Len(t, players, 2)
	assert.Equal(t, 9, players[0].Number)
	assert.Equal(t, "Striker", players[0].Person.Name)
	assert.Same(t, loaded, players[0].Team)
}

func TestEngineSaveTeamRequiresCreatedEntities(t *testing.T) {
	engine := newTestEngine(t)

	assert.Error(t, engine.SaveTeam(models.NewTeam("Unsaved")))

	team, err := engine.CreateTeam("Reds")
	require.NoError(t, err)
	team.AddCoach(models.NewPerson("Nobody"))
	assert.Error(t, engine.SaveTeam(team))
}

func TestEngineTournamentGraphRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	tournament, err := engine.CreateTournament("Cup")
	require.NoError(t, err)
	reds, err := engine.CreateTeam("Reds")
	require.NoError(t, err)
	blues, err := engine.CreateTeam("Blues")
	require.NoError(t, err)
	greens, err := engine.CreateTeam("Greens")
	require.NoError(t, err)

	require.NoError(t, tournament.AddTeam(reds))
	require.NoError(t, tournament.AddTeam(blues))
	require.NoError(t, tournament.AddTeam(greens))
	require.NoError(t, tournament.AddGame(reds, blues))
	require.NoError(t, tournament.AddGame(blues, greens))
	require.NoError(t, tournament.ScoreGame(reds, 2, blues, 1))
	require.NoError(t, engine.SaveTournament(tournament))

	loaded, err := engine.GetTournament("Cup")
	require.NoError(t, err)
	assert.Equal(t, tournament.ID, loaded.ID)

	teams := loaded.Teams()
	require.Len(t, teams, 3)
	assert.Equal(t, "Reds", teams[0].Name)
	assert.Equal(t, "Blues", teams[1].Name)
	assert.Equal(t, "Greens", teams[2].Name)

	require.Len(t, loaded.Games(), 2)
	game, err := loaded.GetGame(blues, reds)
	require.NoError(t, err)
	points, err := game.PointsFor(reds)
	require.NoError(t, err)
	assert.Equal(t, 2, points)

	unscored, err := loaded.GetGame(blues, greens)
	require.NoError(t, err)
	assert.False(t, unscored.HasScore())
	assert.Equal(t, models.Unscored, unscored.Outcome(blues))
}

func TestEngineTournamentStandingsSurviveReload(t *testing.T) {
	engine := newTestEngine(t)

	tournament, err := engine.CreateTournament("Cup")
	require.NoError(t, err)
	reds, err := engine.CreateTeam("Reds")
	require.NoError(t, err)
	blues, err := engine.CreateTeam("Blues")
	require.NoError(t, err)
	require.NoError(t, tournament.AddTeam(reds))
	require.NoError(t, tournament.AddTeam(blues))
	require.NoError(t, tournament.AddGame(reds, blues))
	require.NoError(t, tournament.ScoreGame(reds, 0, blues, 3))
	require.NoError(t, engine.SaveTournament(tournament))

	loaded, err := engine.GetTournament("Cup")
	require.NoError(t, err)
	standings := loaded.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, models.Tally{TeamName: "Blues", Wins: 1}, standings[0])
	assert.Equal(t, models.Tally{TeamName: "Reds", Losses: 1}, standings[1])
}

func TestEngineTournamentNames(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.CreateTournament("Cup")
	require.NoError(t, err)
	_, err = engine.CreateTournament("Cup")
	assert.ErrorIs(t, err, store.ErrNameExists)

	_, err = engine.GetTournament("Shield")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEngineRescoreIsPersisted(t *testing.T) {
	engine := newTestEngine(t)

	tournament, err := engine.CreateTournament("Cup")
	require.NoError(t, err)
	reds, err := engine.CreateTeam("Reds")
	require.NoError(t, err)
	blues, err := engine.CreateTeam("Blues")
	require.NoError(t, err)
	require.NoError(t, tournament.AddTeam(reds))
	require.NoError(t, tournament.AddTeam(blues))
	require.NoError(t, tournament.AddGame(reds, blues))
	require.NoError(t, tournament.ScoreGame(reds, 1, blues, 1))
	require.NoError(t, engine.SaveTournament(tournament))

	loaded, err := engine.GetTournament("Cup")
	require.NoError(t, err)
	require.NoError(t, loaded.ScoreGame(reds, 4, blues, 2))
	require.NoError(t, engine.SaveTournament(loaded))

	reloaded, err := engine.GetTournament("Cup")
	require.NoError(t, err)
	game, err := reloaded.GetGame(reds, blues)
	require.NoError(t, err)
	points, err := game.PointsFor(reds)
	require.NoError(t, err)
	assert.Equal(t, 4, points)
}
