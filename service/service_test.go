package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pitchside/pitchside/store"
	stormstore "github.com/pitchside/pitchside/store/storm"
)

type fixture struct {
	engine      store.Engine
	persons     *PersonService
	teams       *TeamService
	tournaments *TournamentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	engine, err := stormstore.NewEngine(filepath.Join(t.TempDir(), "pitchside.db"))
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })

	persons := NewPersonService(engine)
	teams := NewTeamService(engine, persons)
	tournaments := NewTournamentService(engine, teams)
	return &fixture{
		engine:      engine,
		persons:     persons,
		teams:       teams,
		tournaments: tournaments,
	}
}
