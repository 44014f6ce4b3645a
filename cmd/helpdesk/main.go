package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/server"
	"helpdesk/internal/interfaces/cli/user"
	"helpdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "helpdesk",
		Short:   "IT help desk ticketing service",
		Long:    `helpdesk runs the IT help desk: a public ticket form, a staff work queue and account administration.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		migrate.NewInitDBCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
