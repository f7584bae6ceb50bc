package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

func Report() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report game results for a tournament",
		Long: heredoc.Doc(`
			Report renders the standings table for a tournament. Each team
			gets one row with its win/loss/tie counts and weighted total
			(3 per win, 2 per tie, 1 per loss), ordered best to worst.
		`),
		Args: cobra.NoArgs,

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

			standings, err := svc.tournaments.Standings(tournamentName)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Printf("Tournament with name '%s' does not exist\n", tournamentName)
					return nil
				}
				return err
			}
			renderStandings(cmd.OutOrStdout(), standings)
			return nil
		},
	}

	cmd.Flags().String("tournament", "", "Name of the tournament")
	cmd.MarkFlagRequired("tournament")

	return cmd
}

func renderStandings(w io.Writer, standings []models.Tally) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Team Name", "W", "L", "T", "TOTAL"})
	for _, tally := range standings {
		table.Append([]string{
			tally.TeamName,
			strconv.Itoa(tally.Wins),
			strconv.Itoa(tally.Losses),
			strconv.Itoa(tally.Ties),
			strconv.Itoa(tally.Total()),
		})
	}
	table.Render()
}
