package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Renz00/recipe-vault/internal/app"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DBCommandHandler encapsulates logic for database readiness and schema
// commands via CLI.
type DBCommandHandler struct {
	logger logger.Logger
}

// NewDBCommandHandler initializes and returns a DBCommandHandler instance
// with a configured logger.
func NewDBCommandHandler() (*DBCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DBCommandHandler{logger: loggerInstance}, nil
}

// WaitForDBCmd probes the configured database until it accepts connections
// or the timeout elapses.
func (commandHandler *DBCommandHandler) WaitForDBCmd(cmd *cobra.Command, _ []string) error {
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return fmt.Errorf("invalid timeout flag: %w", err)
	}

	interval, err := cmd.Flags().GetDuration("interval")
	if err != nil {
		return fmt.Errorf("invalid interval flag: %w", err)
	}

	restConfig, err := setupRestConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pinger := persistence.NewDBPinger(restConfig.Database)
	if err := app.NewDBWaiter(pinger, interval, commandHandler.logger).Wait(ctx); err != nil {
		return fmt.Errorf("database did not become available: %w", err)
	}

	return nil
}

// MigrateCmd runs the schema migration for every model against the
// configured database.
func (commandHandler *DBCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) error {
	restConfig, err := setupRestConfig()
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrateAll(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	commandHandler.logger.Info("Database migrations completed successfully")
	return nil
}

// InitDBCommands registers the database commands with the root command.
func InitDBCommands(rootCmd *cobra.Command) error {
	handler, err := NewDBCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create db command handler %w", err)
	}

	var waitForDBCmd = &cobra.Command{
		Use:   "wait-for-db",
		Short: "Block until the database accepts connections",
		RunE:  handler.WaitForDBCmd,
	}
	waitForDBCmd.Flags().DurationP("timeout", "", 60*time.Second, "How long to keep probing before giving up")
	waitForDBCmd.Flags().DurationP("interval", "", time.Second, "Delay between probes")
	rootCmd.AddCommand(waitForDBCmd)

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Run the database schema migration",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
