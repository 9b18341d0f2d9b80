package commands

import (
	"fmt"
	"os"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupRestConfig loads the application settings the way the API server
// does, so every command sees the same database and storage layout. It runs
// inside the commands rather than at registration time, keeping help output
// available without a configured environment.
func setupRestConfig() (*config.RestConfig, error) {
	restConfig, err := config.InitializeRestConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	return restConfig, nil
}
