package main

import (
	"fmt"

	"github.com/oclettings/oc-lettings-site/config"
	"github.com/oclettings/oc-lettings-site/internal/db"
	"github.com/oclettings/oc-lettings-site/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openDB connects to the configured database and migrates it. The returned
// func releases the connection. Tests swap it for an in-memory store.
var openDB = func() (*gorm.DB, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Log.Format == "console",
		FilePath:    cfg.Log.FilePath,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db.GetDB(), db.Close, nil
}

// conn is the store handle opened by the root command for each run.
var (
	conn      *gorm.DB
	closeConn func() error
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "manage",
		Short: "Administer the Orange County Lettings site",
		Long: `manage creates and deletes the records served by the site.

Connection settings are read from the environment (and .env), the same
way the server reads them.

Example:
  manage createuser jdoe --password 's3cretpass' --email jdoe@example.com
  manage createprofile jdoe --favorite-city Paris
  manage createletting "Test House 1" --number 18 --street "Test Street" \
      --city Springfield --state IL --zip-code 62701 --country USA
  manage import lettings.xlsx`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conn, closeConn, err = openDB()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeConn == nil {
				return nil
			}
			return closeConn()
		},
	}

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newCreateUserCmd())
	rootCmd.AddCommand(newDeleteUserCmd())
	rootCmd.AddCommand(newCreateProfileCmd())
	rootCmd.AddCommand(newCreateLettingCmd())
	rootCmd.AddCommand(newDeleteLettingCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The root command has already migrated while connecting.
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}
