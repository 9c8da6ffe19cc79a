package dashboard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appDashboard "streamdesk/internal/dashboard"
	sharedConfig "streamdesk/internal/shared/config"
	"streamdesk/internal/shared/logger"
	"streamdesk/sdk/admin"
)

var (
	baseURL string
	token   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive admin dashboard",
		Long:  `Connect to a running admin API server and manage users, payments and broadcasts from the terminal.`,
		RunE:  run,
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Admin API base URL")
	cmd.Flags().StringVar(&token, "token", "", "Admin bearer token (defaults to STREAMDESK_SERVER_ADMIN_TOKEN)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if token == "" {
		token = os.Getenv("STREAMDESK_SERVER_ADMIN_TOKEN")
	}

	if err := logger.Init(&sharedConfig.LoggerConfig{Level: "warn", Format: "console"}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client := admin.NewClient(baseURL, admin.WithToken(token))

	if err := client.Health(cmd.Context()); err != nil {
		return fmt.Errorf("admin API at %s is not reachable: %w", baseURL, err)
	}

	app := appDashboard.NewApp(client, os.Stdin, os.Stdout, logger.NewLogger())
	return app.Run(cmd.Context())
}
