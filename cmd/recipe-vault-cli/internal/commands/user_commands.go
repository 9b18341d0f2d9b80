package commands

import (
	"fmt"
	"syscall"

	"github.com/Renz00/recipe-vault/internal/app"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence"
	"github.com/Renz00/recipe-vault/internal/infrastructure/security"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// UserCommandHandler encapsulates logic for account provisioning via CLI.
type UserCommandHandler struct {
	logger logger.Logger
}

// NewUserCommandHandler initializes and returns a UserCommandHandler
// instance with a configured logger.
func NewUserCommandHandler() (*UserCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &UserCommandHandler{logger: loggerInstance}, nil
}

// CreateSuperuserCmd provisions an active account carrying staff and
// superuser flags. The password comes from the flag when given, otherwise
// from an interactive prompt.
func (commandHandler *UserCommandHandler) CreateSuperuserCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	restConfig, err := setupRestConfig()
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}

	hasher, err := security.NewBcryptPasswordHasher(commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	accountService, err := app.NewUserAccountService(userRepo, hasher, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user account service: %w", err)
	}

	if _, err := accountService.CreateSuperuser(cmd.Context(), email, name, password); err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	commandHandler.logger.Info("Superuser created successfully")
	return nil
}

// promptPassword reads the password twice from the terminal without echo.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Password (again): ")
	confirmation, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirmation) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}

// InitUserCommands registers the account commands with the root command.
func InitUserCommands(rootCmd *cobra.Command) error {
	handler, err := NewUserCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create user command handler %w", err)
	}

	var createSuperuserCmd = &cobra.Command{
		Use:   "create-superuser",
		Short: "Create an account with staff and superuser privileges",
		RunE:  handler.CreateSuperuserCmd,
	}
	createSuperuserCmd.Flags().StringP("email", "", "", "Email address for the new superuser")
	createSuperuserCmd.Flags().StringP("name", "", "", "Display name for the new superuser")
	createSuperuserCmd.Flags().StringP("password", "", "", "Password (prompted interactively when omitted)")
	if err := createSuperuserCmd.MarkFlagRequired("email"); err != nil {
		return fmt.Errorf("failed to mark email flag required: %w", err)
	}
	rootCmd.AddCommand(createSuperuserCmd)

	return nil
}
