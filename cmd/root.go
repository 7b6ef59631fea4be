package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "alumniconnect",
	Short: "AlumniConnect platform backend",
	Long:  `AlumniConnect is a role-based platform connecting students, alumni and admins for job referrals, mentorship and direct messaging.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)

		cfg, err = config.Load(cfgFile)
		return err
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
}
