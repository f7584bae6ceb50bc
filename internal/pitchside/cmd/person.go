package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pitchside/pitchside/store"
)

func CreatePerson() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-person",
		Short: "Create a new person with the specified name",
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

			if _, err := svc.persons.Create(name); err != nil {
				if errors.Is(err, store.ErrNameExists) {
					fmt.Printf("Person with name '%s' already exists\n", name)
					return nil
				}
				return err
			}
			fmt.Printf("Person with name '%s' created\n", name)
			return nil
		},
	}

	cmd.Flags().StringP("name", "N", "", "Name of the person")
	cmd.MarkFlagRequired("name")

	return cmd
}
