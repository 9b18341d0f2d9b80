// Package main is the entry point for the recipe-vault-cli application.
// It initializes the root command and registers the operational sub-commands
// (database readiness, schema migration, static asset collection, superuser
// provisioning), then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Renz00/recipe-vault/cmd/recipe-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "recipe-vault-cli",
		Short: "Operational tasks CLI tool",
		Long: `recipe-vault-cli is a command-line tool for operating the recipe service.
It blocks deployments until the database accepts connections, runs schema
migrations, collects static assets onto the shared volume and provisions
superuser accounts.

Database and storage settings are read from the same environment variables
the API server uses (DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS, SECRET_KEY,
STATIC_ROOT, MEDIA_ROOT), optionally overridden by a CONFIG_PATH YAML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register database commands
	if err := commands.InitDBCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize db commands: %w", err)
	}

	// Register static asset commands
	if err := commands.InitStaticCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize static commands: %w", err)
	}

	// Register user commands
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
