// cmd/recipe-vault-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Renz00/recipe-vault/internal/api/rest/v1"
	"github.com/Renz00/recipe-vault/internal/app"
	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence"
	"github.com/Renz00/recipe-vault/internal/infrastructure/ratelimit"
	"github.com/Renz00/recipe-vault/internal/infrastructure/security"
	"github.com/Renz00/recipe-vault/internal/infrastructure/storage"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

// dbWaitTimeout bounds the startup wait for the database container.
const dbWaitTimeout = 60 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration. An unset CONFIG_PATH means environment
	// variables and defaults only.
	configPath := os.Getenv("CONFIG_PATH")

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
	limiter  ratelimit.RateLimiter
}

type appServices struct {
	userAccount   users.UserAccountService
	userAuth      users.UserAuthService
	recipeCatalog recipes.RecipeCatalogService
	recipeImage   recipes.RecipeImageService
	tag           recipes.TagService
	ingredient    recipes.IngredientService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Wait for the database to accept connections
	pinger := persistence.NewDBPinger(cfg.Database)
	waitCtx, cancel := context.WithTimeout(context.Background(), dbWaitTimeout)
	defer cancel()
	if err := app.NewDBWaiter(pinger, time.Second, log).Wait(waitCtx); err != nil {
		return nil, fmt.Errorf("database did not become available: %w", err)
	}

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrateAll(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	recipeRepo, err := persistence.NewGormRecipeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe repository: %w", err)
	}

	tagRepo, err := persistence.NewGormTagRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag repository: %w", err)
	}

	ingredientRepo, err := persistence.NewGormIngredientRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingredient repository: %w", err)
	}

	// Initialize security primitives
	hasher, err := security.NewBcryptPasswordHasher(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokenManager, err := security.NewJwtTokenManager(&cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	// Initialize media storage
	mediaStore, err := storage.NewFileStore(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media store: %w", err)
	}

	// Initialize rate limiter
	limiter, err := ratelimit.NewRateLimiter(&cfg.RateLimit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(
		userRepo, recipeRepo, tagRepo, ingredientRepo,
		hasher, tokenManager, mediaStore, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services: services,
		limiter:  limiter,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Enforce the host allow-list
	r.Use(v1.AllowedHostsMiddleware(cfg.AllowedHostList()))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.userAccount,
		deps.services.userAuth,
		deps.services.recipeCatalog,
		deps.services.recipeImage,
		deps.services.tag,
		deps.services.ingredient,
		deps.limiter,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	userRepo users.UserRepository,
	recipeRepo recipes.RecipeRepository,
	tagRepo recipes.TagRepository,
	ingredientRepo recipes.IngredientRepository,
	hasher users.PasswordHasher,
	tokenManager users.TokenManager,
	mediaStore recipes.MediaStore,
	log logger.Logger,
) (*appServices, error) {
	userAccountService, err := app.NewUserAccountService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account service: %w", err)
	}

	userAuthService, err := app.NewUserAuthService(userRepo, hasher, tokenManager, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user auth service: %w", err)
	}

	recipeCatalogService, err := app.NewRecipeCatalogService(recipeRepo, tagRepo, ingredientRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe catalog service: %w", err)
	}

	recipeImageService, err := app.NewRecipeImageService(recipeRepo, mediaStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe image service: %w", err)
	}

	tagService, err := app.NewTagService(tagRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag service: %w", err)
	}

	ingredientService, err := app.NewIngredientService(ingredientRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingredient service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		userAccount:   userAccountService,
		userAuth:      userAuthService,
		recipeCatalog: recipeCatalogService,
		recipeImage:   recipeImageService,
		tag:           tagService,
		ingredient:    ingredientService,
	}, nil
}
