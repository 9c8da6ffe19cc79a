package main

import (
	"os"

	"github.com/spf13/cobra"

	"streamdesk/internal/interfaces/cli/dashboard"
	"streamdesk/internal/interfaces/cli/migrate"
	"streamdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "streamdesk",
		Short: "Streamdesk - admin backend for the subscription bot",
		Long:  `Streamdesk serves the admin dashboard API, runs database migrations and ships an interactive terminal dashboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		dashboard.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
