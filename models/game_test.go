package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, name1, name2 string) *Game {
	t.Helper()
	game, err := NewGame(NewTeam(name1), NewTeam(name2))
	require.NoError(t, err)
	return game
}

func TestNewGameRejectsSelfPlay(t *testing.T) {
	team := NewTeam("Loners")
	_, err := NewGame(team, team)
	assert.ErrorIs(t, err, ErrInvalidGame)

	// Two unsaved teams with the same name are the same team.
	_, err = NewGame(NewTeam("Loners"), NewTeam("Loners"))
	assert.ErrorIs(t, err, ErrInvalidGame)
}

func TestGameHasTeam(t *testing.T) {
	game := newTestGame(t, "First", "Second")

	assert.True(t, game.HasTeam(NewTeam("First")))
	assert.True(t, game.HasTeam(NewTeam("Second")))
	assert.False(t, game.HasTeam(NewTeam("Third")))
}

func TestGameSetScore(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	assert.False(t, game.HasScore())

	require.NoError(t, game.SetScore(team1, 3, team2, 1))
	assert.True(t, game.HasScore())

	points, err := game.PointsFor(team1)
	require.NoError(t, err)
	assert.Equal(t, 3, points)

	points, err = game.PointsFor(team2)
	require.NoError(t, err)
	assert.Equal(t, 1, points)

	points, err = game.PointsForOpponent(team1)
	require.NoError(t, err)
	assert.Equal(t, 1, points)

	points, err = game.PointsForOpponent(team2)
	require.NoError(t, err)
	assert.Equal(t, 3, points)
}

func TestGameSetScoreArgumentOrderDoesNotMatter(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	require.NoError(t, game.SetScore(team2, 1, team1, 3))

	points, err := game.PointsFor(team1)
	require.NoError(t, err)
	assert.Equal(t, 3, points)
}

func TestGameRescoreOverwrites(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	require.NoError(t, game.SetScore(team1, 1, team2, 1))
	require.NoError(t, game.SetScore(team1, 4, team2, 2))

	points, err := game.PointsFor(team1)
	require.NoError(t, err)
	assert.Equal(t, 4, points)
	points, err = game.PointsFor(team2)
	require.NoError(t, err)
	assert.Equal(t, 2, points)
}

func TestGameNegativeScoreLeavesGameUntouched(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	assert.ErrorIs(t, game.SetScore(team1, -1, team2, 2), ErrInvalidScore)
	assert.ErrorIs(t, game.SetScore(team1, 1, team2, -2), ErrInvalidScore)
	assert.False(t, game.HasScore())

	// A failed rescore keeps the previous score.
	require.NoError(t, game.SetScore(team1, 2, team2, 0))
	assert.ErrorIs(t, game.SetScore(team1, -5, team2, 5), ErrInvalidScore)
	points, err := game.PointsFor(team1)
	require.NoError(t, err)
	assert.Equal(t, 2, points)
}

func TestGamePointsForTeamNotInGame(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	other := NewTeam("Other")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	_, err = game.PointsFor(other)
	assert.ErrorIs(t, err, ErrTeamNotInGame)
	_, err = game.PointsForOpponent(other)
	assert.ErrorIs(t, err, ErrTeamNotInGame)

	// Not-in-game wins over not-scored, even once the game is scored.
	require.NoError(t, game.SetScore(team1, 1, team2, 0))
	_, err = game.PointsFor(other)
	assert.ErrorIs(t, err, ErrTeamNotInGame)
}

func TestGamePointsForUnscoredGame(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	_, err = game.PointsFor(team1)
	assert.ErrorIs(t, err, ErrGameNotScored)
	_, err = game.PointsForOpponent(team1)
	assert.ErrorIs(t, err, ErrGameNotScored)
}

func TestGameOutcome(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")

	tests := []struct {
		name             string
		points1, points2 int
		want1, want2     Outcome
	}{
		{"first team wins", 3, 1, Win, Loss},
		{"second team wins", 0, 2, Loss, Win},
		{"tie", 2, 2, Tie, Tie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := NewGame(team1, team2)
			require.NoError(t, err)
			require.NoError(t, game.SetScore(team1, tt.points1, team2, tt.points2))

			assert.Equal(t, tt.want1, game.Outcome(team1))
			assert.Equal(t, tt.want2, game.Outcome(team2))
		})
	}
}

func TestGameOutcomeDegradesToUnscored(t *testing.T) {
	team1 := NewTeam("First")
	team2 := NewTeam("Second")
	game, err := NewGame(team1, team2)
	require.NoError(t, err)

	// No score recorded yet.
	assert.Equal(t, Unscored, game.Outcome(team1))

	// Team not in the game, scored or not.
	assert.Equal(t, Unscored, game.Outcome(NewTeam("Other")))
	require.NoError(t, game.SetScore(team1, 1, team2, 0))
	assert.Equal(t, Unscored, game.Outcome(NewTeam("Other")))
}
