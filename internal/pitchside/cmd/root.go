package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pitchside/pitchside/service"
	"github.com/pitchside/pitchside/store"
	stormstore "github.com/pitchside/pitchside/store/storm"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:  "pitchside",
		Args: cobra.NoArgs,

		Short: "Track tournaments, teams, games, and standings",
		Long: heredoc.Doc(`
			Pitchside tracks sports tournaments: the teams taking part, the
			people coaching and playing on them, the games between teams,
			their scores, and the standings table derived from the results.

			All data lives in a local database file, so state carries over
			between invocations.
		`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("db", "", "Path to the database file")

	root.AddCommand(CreatePerson())
	root.AddCommand(CreateTeam())
	root.AddCommand(CreateTournament())
	root.AddCommand(AddCoach())
	root.AddCommand(AddPlayer())
	root.AddCommand(AddTeam())
	root.AddCommand(AddGame())
	root.AddCommand(ScoreGame())
	root.AddCommand(Schedule())
	root.AddCommand(Report())

	return root
}

// services bundles the service layer around one open storage engine.
// Commands open it on entry and close it when they are done.
type services struct {
	engine      store.Engine
	persons     *service.PersonService
	teams       *service.TeamService
	tournaments *service.TournamentService
}

func openServices(cmd *cobra.Command) (*services, error) {
	path, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path, err = xdg.DataFile("pitchside/pitchside.db")
		if err != nil {
			return nil, err
		}
	}
	logrus.Debugf("opening database at %s", path)

	engine, err := stormstore.NewEngine(path)
	if err != nil {
		return nil, err
	}
	persons := service.NewPersonService(engine)
	teams := service.NewTeamService(engine, persons)
	tournaments := service.NewTournamentService(engine, teams)
	return &services{
		engine:      engine,
		persons:     persons,
		teams:       teams,
		tournaments: tournaments,
	}, nil
}

func (s *services) Close() {
	if err := s.engine.Close(); err != nil {
		logrus.Errorf("closing database: %v", err)
	}
}
