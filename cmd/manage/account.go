package main

import (
	"fmt"

	"github.com/oclettings/oc-lettings-site/internal/app/repository"
	"github.com/oclettings/oc-lettings-site/internal/app/service"
	"github.com/spf13/cobra"
)

func accountService() service.AccountService {
	return service.NewAccountService(repository.NewUserRepository(conn))
}

func profileService() service.ProfileService {
	return service.NewProfileService(repository.NewProfileRepository(conn), repository.NewUserRepository(conn))
}

func newCreateUserCmd() *cobra.Command {
	var input service.UserInput

	cmd := &cobra.Command{
		Use:   "createuser <username>",
		Short: "Open an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Username = args[0]

			user, err := accountService().CreateUser(input)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newDeleteUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteuser <username>",
		Short: "Delete an account and its profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := accountService().DeleteUser(args[0]); err != nil {
				return fmt.Errorf("delete user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
			return nil
		},
	}
}

func newCreateProfileCmd() *cobra.Command {
	var favoriteCity string

	cmd := &cobra.Command{
		Use:   "createprofile <username>",
		Short: "Attach a profile to an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := profileService().CreateProfile(args[0], favoriteCity)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created profile for %s (id %d)\n", args[0], profile.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&favoriteCity, "favorite-city", "", "favorite city")

	return cmd
}
