package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

func CreateTournament() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-tournament",
		Short: "Create a new tournament with the specified name",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("name")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if _, err := svc.tournaments.Create(name); err != nil {
				if errors.Is(err, store.ErrNameExists) {
					fmt.Printf("Tournament with name '%s' already exists\n", name)
					return nil
				}
				return err
			}
			fmt.Printf("Tournament with name '%s' created\n", name)
			return nil
		},
	}

	cmd.Flags().StringP("name", "N", "", "Name of the tournament")
	cmd.MarkFlagRequired("name")

	return cmd
}

func AddTeam() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-team",
		Short: "Add a team to a tournament",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			teamName, err := cmd.Flags().GetString("team")
			if err != nil {
				return err
			}
			tournamentName, err := cmd.Flags().GetString("tournament")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.tournaments.AddTeam(teamName, tournamentName); err != nil {
				switch {
				case errors.Is(err, store.ErrNotFound):
					fmt.Printf("Tournament with name '%s' does not exist\n", tournamentName)
					return nil
				case errors.Is(err, models.ErrTeamAlreadyInTournament):
					fmt.Printf("Team with name '%s' is already in tournament '%s'\n", teamName, tournamentName)
					return nil
				}
				return err
			}
			fmt.Printf("Team with name '%s' added to tournament '%s'\n", teamName, tournamentName)
			return nil
		},
	}

	cmd.Flags().String("team", "", "Name of the team")
	cmd.Flags().String("tournament", "", "Name of the tournament")
	cmd.MarkFlagRequired("team")
	cmd.MarkFlagRequired("tournament")

	return cmd
}

func AddGame() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-game",
		Short: "Add a game between two teams to a tournament",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			team1Name, err := cmd.Flags().GetString("team1")
			if err != nil {
				return err
			}
			team2Name, err := cmd.Flags().GetString("team2")
			if err != nil {
				return err
			}
			tournamentName, err := cmd.Flags().GetString("tournament")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.tournaments.AddGame(team1Name, team2Name, tournamentName); err != nil {
				switch {
				case errors.Is(err, store.ErrNotFound):
					fmt.Printf("Tournament with name '%s' does not exist\n", tournamentName)
					return nil
				case errors.Is(err, models.ErrGameAlreadyInTournament):
					fmt.Printf("Game between teams '%s' and '%s' already exists in tournament '%s'\n", team1Name, team2Name, tournamentName)
					return nil
				case errors.Is(err, models.ErrInvalidGame):
					fmt.Printf("The team '%s' can not play itself ('%s') in tournament '%s'\n", team1Name, team2Name, tournamentName)
					return nil
				}
				return err
			}
			fmt.Printf("Game between teams '%s' and '%s' added to tournament '%s'\n", team1Name, team2Name, tournamentName)
			return nil
		},
	}

	cmd.Flags().String("team1", "", "Name of the first team")
	cmd.Flags().String("team2", "", "Name of the second team")
	cmd.Flags().String("tournament", "", "Name of the tournament")
	cmd.MarkFlagRequired("team1")
	cmd.MarkFlagRequired("team2")
	cmd.MarkFlagRequired("tournament")

	return cmd
}

func ScoreGame() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score-game",
		Short: "Score a game between two teams in a tournament",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			team1Name, err := cmd.Flags().GetString("team1")
			if err != nil {
				return err
			}
			team1Points, err := cmd.Flags().GetInt("points1")
			if err != nil {
				return err
			}
			team2Name, err := cmd.Flags().GetString("team2")
			if err != nil {
				return err
			}
			team2Points, err := cmd.Flags().GetInt("points2")
			if err != nil {
				return err
			}
			tournamentName, err := cmd.Flags().GetString("tournament")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.tournaments.ScoreGame(team1Name, team1Points, team2Name, team2Points, tournamentName); err != nil {
				switch {
				case errors.Is(err, store.ErrNotFound):
					// The tournament lookup happens first, so a missing
					// tournament and a missing team both surface here.
					fmt.Printf("Score for game in tournament '%s' NOT set because the tournament or either team '%s' or team '%s' does not exist\n", tournamentName, team1Name, team2Name)
					return nil
				case errors.Is(err, models.ErrGameDoesNotExist):
					fmt.Printf("Score for game between team '%s' and team '%s' NOT set because that game does not exist in tournament '%s'\n", team1Name, team2Name, tournamentName)
					return nil
				case errors.Is(err, models.ErrInvalidScore):
					fmt.Printf("Score for game in tournament '%s' NOT set because the score is invalid: team '%s' scored %d point(s) and team '%s' scored %d point(s)\n", tournamentName, team1Name, team1Points, team2Name, team2Points)
					return nil
				}
				return err
			}
			fmt.Printf("Score for game in tournament '%s' set: team '%s' scored %d point(s) and team '%s' scored %d point(s)\n", tournamentName, team1Name, team1Points, team2Name, team2Points)
			return nil
		},
	}

	cmd.Flags().String("team1", "", "Name of the first team")
	cmd.Flags().Int("points1", 0, "Points scored by the first team")
	cmd.Flags().String("team2", "", "Name of the second team")
	cmd.Flags().Int("points2", 0, "Points scored by the second team")
	cmd.Flags().String("tournament", "", "Name of the tournament")
	cmd.MarkFlagRequired("team1")
	cmd.MarkFlagRequired("points1")
	cmd.MarkFlagRequired("team2")
	cmd.MarkFlagRequired("points2")
	cmd.MarkFlagRequired("tournament")

	return cmd
}

func Schedule() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Add round-robin games for every pair of teams in a tournament",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			tournamentName, err := cmd.Flags().GetString("tournament")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			created, err := svc.tournaments.ScheduleRoundRobin(tournamentName)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Printf("Tournament with name '%s' does not exist\n", tournamentName)
					return nil
				}
				return err
			}
			fmt.Printf("Scheduled %d game(s) in tournament '%s'\n", created, tournamentName)
			return nil
		},
	}

	cmd.Flags().String("tournament", "", "Name of the tournament")
	cmd.MarkFlagRequired("tournament")

	return cmd
}
