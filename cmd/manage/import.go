package main

import (
	"fmt"

	"github.com/oclettings/oc-lettings-site/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Import lettings and profiles from a workbook",
		Long: `Import reads the "lettings" and "profiles" sheets of an XLSX workbook.

The first row of each sheet is a header:
  lettings: title, number, street, city, state, zip_code, country_iso_code
  profiles: username, email, first_name, last_name, favorite_city

Each row is stored on its own. The first malformed row stops the import and
is reported with its row number; rows before it are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.New(conn).ImportFile(args[0])
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d lettings, %d profiles (%d new accounts)\n",
					result.Lettings, result.Profiles, result.Accounts)
			}
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			return nil
		},
	}
}
