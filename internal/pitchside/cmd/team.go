package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

func CreateTeam() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-team",
		Short: "Create a new team with the specified name",
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

			if _, err := svc.teams.Create(name); err != nil {
				if errors.Is(err, store.ErrNameExists) {
					fmt.Printf("Team with name '%s' already exists\n", name)
					return nil
				}
				return err
			}
			fmt.Printf("Team with name '%s' created\n", name)
			return nil
		},
	}

	cmd.Flags().StringP("name", "N", "", "Name of the team")
	cmd.MarkFlagRequired("name")

	return cmd
}

func AddCoach() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-coach",
		Short: "Add a coach to a team",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			personName, err := cmd.Flags().GetString("coach")
			if err != nil {
				return err
			}
			teamName, err := cmd.Flags().GetString("team")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.teams.AddCoach(personName, teamName); err != nil {
				if errors.Is(err, models.ErrCoachAlreadyOnTeam) {
					fmt.Printf("Person with name '%s' is already a coach on team '%s'\n", personName, teamName)
					return nil
				}
				return err
			}
			fmt.Printf("Person with name '%s' added as a coach to team '%s'\n", personName, teamName)
			return nil
		},
	}

	cmd.Flags().String("coach", "", "Name of the coach")
	cmd.Flags().String("team", "", "Name of the team")
	cmd.MarkFlagRequired("coach")
	cmd.MarkFlagRequired("team")

	return cmd
}

func AddPlayer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-player",
		Short: "Add a player to a team",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			personName, err := cmd.Flags().GetString("player")
			if err != nil {
				return err
			}
			teamName, err := cmd.Flags().GetString("team")
			if err != nil {
				return err
			}
			number, err := cmd.Flags().GetInt("number")
			if err != nil {
				return err
			}

			svc, err := openServices(cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			if err := svc.teams.AddPlayer(personName, teamName, number); err != nil {
				switch {
				case errors.Is(err, models.ErrPlayerAlreadyOnTeam):
					fmt.Printf("Person with name '%s' is already a player on team '%s'\n", personName, teamName)
					return nil
				case errors.Is(err, models.ErrNumberAlreadyInUse):
					fmt.Printf("Player with number '%d' is already on team '%s'\n", number, teamName)
					return nil
				}
				return err
			}
			fmt.Printf("Person with name '%s' added as a player to team '%s' with number '%d'\n", personName, teamName, number)
			return nil
		},
	}

	cmd.Flags().String("player", "", "Name of the player")
	cmd.Flags().String("team", "", "Name of the team")
	cmd.Flags().Int("number", 0, "Number of the player on this team")
	cmd.MarkFlagRequired("player")
	cmd.MarkFlagRequired("team")
	cmd.MarkFlagRequired("number")

	return cmd
}
