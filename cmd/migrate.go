package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/database"
)

// migrateCmd migrates the database schema without starting the server.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.SetPath(cfg.Database.Path)
		database.GetDB() // opening runs AutoMigrate
		zap.L().Info("migrations complete")
		return database.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
