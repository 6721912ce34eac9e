package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeremiapane/ecommerce-api/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)
		return database.Migrate(db)
	},
}
