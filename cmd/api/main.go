package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	accountUseCase "luckyten/internal/domain/usecase/account"
	betUseCase "luckyten/internal/domain/usecase/bet"

	"luckyten/internal/infrastructure/adapter/api/handler"
	"luckyten/internal/infrastructure/adapter/api/routes"
	"luckyten/internal/infrastructure/adapter/database"
	"luckyten/internal/infrastructure/adapter/hash"
	"luckyten/internal/infrastructure/adapter/logger"
	"luckyten/internal/infrastructure/adapter/repository"
	"luckyten/internal/infrastructure/adapter/rng"
	timeProvider "luckyten/internal/infrastructure/adapter/time"
	"luckyten/internal/infrastructure/adapter/token"
	"luckyten/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Connect to the database
	db, err := database.Connect(dbConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Run migrations
	if err := database.Migrate(db, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db, tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(db, tp, appLogger)

	// Initialize use cases
	accountService := accountUseCase.NewService(
		playerRepo,
		ledgerRepo,
		hash.NewBcryptHasher(),
		tp,
		appLogger,
		cfg.Game.StartingBalance,
	)

	betResolver := betUseCase.NewResolver(
		playerRepo,
		ledgerRepo,
		rng.NewUniformGenerator(),
		tp,
		appLogger,
		betUseCase.Rules{
			MinDigit:      cfg.Game.MinDigit,
			MaxDigit:      cfg.Game.MaxDigit,
			WinMultiplier: cfg.Game.WinMultiplier,
		},
	)

	// Session token issuer
	tokenIssuer, err := token.NewIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialize token issuer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	accountHandler := handler.NewAccountHandler(accountService, tokenIssuer, appLogger)
	betHandler := handler.NewBetHandler(betResolver, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, accountHandler, betHandler, tokenIssuer)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
