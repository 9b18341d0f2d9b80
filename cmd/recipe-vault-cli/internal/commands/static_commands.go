package commands

import (
	"fmt"

	"github.com/Renz00/recipe-vault/internal/infrastructure/storage"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// StaticCommandHandler encapsulates logic for the static asset pipeline
// via CLI.
type StaticCommandHandler struct {
	logger logger.Logger
}

// NewStaticCommandHandler initializes and returns a StaticCommandHandler
// instance with a configured logger.
func NewStaticCommandHandler() (*StaticCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &StaticCommandHandler{logger: loggerInstance}, nil
}

// CollectStaticCmd copies the static asset tree onto the shared volume the
// edge server serves from. Existing files are overwritten, so the command
// can run on every deployment.
func (commandHandler *StaticCommandHandler) CollectStaticCmd(cmd *cobra.Command, _ []string) error {
	sourceDir, err := cmd.Flags().GetString("source")
	if err != nil {
		return fmt.Errorf("invalid source flag: %w", err)
	}

	restConfig, err := setupRestConfig()
	if err != nil {
		return err
	}

	if sourceDir != "" {
		restConfig.Storage.StaticSource = sourceDir
	}

	collector, err := storage.NewStaticCollector(&restConfig.Storage, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create static collector: %w", err)
	}

	if _, err := collector.Collect(cmd.Context()); err != nil {
		return fmt.Errorf("failed to collect static files: %w", err)
	}

	return nil
}

// InitStaticCommands registers the static asset commands with the root command.
func InitStaticCommands(rootCmd *cobra.Command) error {
	handler, err := NewStaticCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create static command handler %w", err)
	}

	var collectStaticCmd = &cobra.Command{
		Use:   "collect-static",
		Short: "Copy static assets onto the shared volume",
		RunE:  handler.CollectStaticCmd,
	}
	collectStaticCmd.Flags().StringP("source", "", "", "Directory holding the asset tree (defaults to the configured static source)")
	rootCmd.AddCommand(collectStaticCmd)

	return nil
}
