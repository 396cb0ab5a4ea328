package main

import (
	"fmt"
	"strconv"

	"github.com/oclettings/oc-lettings-site/internal/app/model"
	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	"github.com/spf13/cobra"
)

func lettingService() service.LettingService {
	return service.NewLettingService(repository.NewLettingRepository(conn))
}

func newCreateLettingCmd() *cobra.Command {
	var address model.AddressInput

	cmd := &cobra.Command{
		Use:   "createletting <title>",
		Short: "Create a letting together with its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letting, err := lettingService().CreateLetting(args[0], address)
			if err != nil {
				return fmt.Errorf("create letting: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created letting %q (id %d) at %s\n", letting.Title, letting.ID, letting.Address)
			return nil
		},
	}

	cmd.Flags().StringVar(&address.Number, "number", "", "street number")
	cmd.Flags().StringVar(&address.Street, "street", "", "street name")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&address.State, "state", "", "state code")
	cmd.Flags().StringVar(&address.ZipCode, "zip-code", "", "zip code")
	cmd.Flags().StringVar(&address.CountryISOCode, "country", "", "country ISO code")
	for _, name := range []string{"number", "street", "city", "state", "zip-code", "country"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newDeleteLettingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteletting <id>",
		Short: "Delete a letting and its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 0)
			if err != nil {
				return fmt.Errorf("invalid letting id %q", args[0])
			}

			if err := lettingService().DeleteLetting(uint(id)); err != nil {
				return fmt.Errorf("delete letting: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted letting %d\n", id)
			return nil
		},
	}
}
