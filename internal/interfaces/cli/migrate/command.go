package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"streamdesk/internal/infrastructure/config"
	"streamdesk/internal/infrastructure/database"
	"streamdesk/internal/infrastructure/migration"
	"streamdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.NewManager(database.Get(), log).Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed", "driver", cfg.Database.Driver)
	return nil
}
