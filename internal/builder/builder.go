package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/api"
	ideaapi "github.com/ideanest/ideanest-backend/internal/api/idea"
	"github.com/ideanest/ideanest-backend/internal/api/middleware"
	validationapi "github.com/ideanest/ideanest-backend/internal/api/validation"
	"github.com/ideanest/ideanest-backend/internal/config"
	"github.com/ideanest/ideanest-backend/internal/integration/auth"
	"github.com/ideanest/ideanest-backend/internal/integration/gemini"
	"github.com/ideanest/ideanest-backend/internal/pkg/validator"
	"github.com/ideanest/ideanest-backend/internal/repository"
	ideauc "github.com/ideanest/ideanest-backend/internal/usecase/idea"
	validationuc "github.com/ideanest/ideanest-backend/internal/usecase/validation"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	ideaRepo := repository.NewIdeaPostgres(db)
	validationRepo := repository.NewValidationPostgres(db)
	listener := repository.NewChangeListener(cfg.DatabaseURL, cfg.ListenerRetry, logger)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var geminiConnector validationuc.TextGenerator
	var authConnector middleware.Introspector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		geminiConnector = gemini.NewMockConnector(logger)
		authConnector = auth.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		geminiConnector = gemini.NewConnector(cfg.GeminiConnectorCfg, logger)
		authConnector = auth.NewConnector(cfg.AuthConnectorCfg, logger)
	}

	// Initialize validators
	requestValidator := validator.New()

	// Initialize use cases
	ideaUC := ideauc.NewUsecase(ideaRepo, logger)
	validationUC := validationuc.NewUsecase(
		ideaRepo,
		validationRepo,
		geminiConnector,
		listener,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	ideaHandler := ideaapi.NewHandler(ideaUC, requestValidator)
	validationHandler := validationapi.NewHandler(validationUC, requestValidator)
	logger.Info("API handlers initialized")

	// Setup router
	authMiddleware := middleware.Auth(authConnector, cfg.AuthConnectorCfg.SessionCacheTTL)
	router := api.SetupRouter(ideaHandler, validationHandler, authMiddleware, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. WriteTimeout stays unset: the validation
	// event stream holds its response open for the connection lifetime.
	server := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:   server,
		db:       db,
		listener: listener,
		logger:   logger,
	}, nil
}
