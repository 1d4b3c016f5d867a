package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/provider"
	adminUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/admin"
	authUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/auth"
	creditsUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/credits"
	paymentUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/payment"
	userUseCase "github.com/artify-ai/artify-backend/internal/domain/usecase/user"

	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/handler"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/api/routes"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/database"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/database/migration"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/logger"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/provider/googleid"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/provider/hmacpay"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/provider/openai"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/provider/stripepay"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/repository"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/security"
	timeProvider "github.com/artify-ai/artify-backend/internal/infrastructure/adapter/time"
	"github.com/artify-ai/artify-backend/internal/infrastructure/adapter/token"
	"github.com/artify-ai/artify-backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

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
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	ledgerRepo := repository.NewLedgerRepository(dbManager.DB(), tp, appLogger)

	// Security adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	jwtManager, err := token.NewJWTManager(cfg.Auth.JWTSecret, coreport.Duration(cfg.Auth.TokenTTL), tp)
	if err != nil {
		appLogger.Error("Failed to initialize token manager", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Providers
	identityProvider := googleid.New(googleid.Config{
		ClientID: cfg.Auth.GoogleClientID,
	}, appLogger)

	imageProvider, err := openai.New(openai.Config{
		APIKey:  cfg.Image.OpenAIAPIKey,
		BaseURL: cfg.Image.OpenAIBaseURL,
		Size:    cfg.Image.Size,
	}, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize image provider", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	paymentProvider, err := buildPaymentProvider(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize payment provider", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Seed the default admin account
	if err := migration.SeedDefaultAdmin(context.Background(), userRepo, hasher, tp, appLogger,
		cfg.Admin.Email, cfg.Admin.Password); err != nil {
		appLogger.Error("Failed to seed default admin", map[string]any{"error": err.Error()})
	}

	// Use cases
	guard := creditsUseCase.NewGuard(userRepo, appLogger)
	executor := creditsUseCase.NewExecutor(ledgerRepo, guard, tp, appLogger,
		coreport.Duration(cfg.Image.ProviderTimeout))
	intentTracker := paymentUseCase.NewIntentTracker(ledgerRepo, paymentProvider, tp, appLogger)
	reconciler := paymentUseCase.NewReconciler(ledgerRepo, transactionRepo, paymentProvider, appLogger)
	authService := authUseCase.NewService(userRepo, hasher, jwtManager, identityProvider, tp, appLogger)
	userService := userUseCase.NewService(userRepo, transactionRepo, appLogger)
	adminService := adminUseCase.NewService(userRepo, ledgerRepo, appLogger)

	// Router and handlers
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:    handler.NewAuthHandler(authService, appLogger),
		User:    handler.NewUserHandler(userService, appLogger),
		Image:   handler.NewImageHandler(executor, imageProvider, cfg.Image.CostPerImage, cfg.Image.UploadDir, appLogger),
		Payment: handler.NewPaymentHandler(intentTracker, reconciler, cfg.Payment.SignatureHeader, appLogger),
		Admin:   handler.NewAdminHandler(adminService, appLogger),
	}, jwtManager, userRepo, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildPaymentProvider selects the configured payment provider variant
func buildPaymentProvider(cfg *config.Config, appLogger coreport.Logger) (provider.PaymentProvider, error) {
	switch cfg.Payment.Provider {
	case "stripe":
		return stripepay.New(stripepay.Config{
			SecretKey:      cfg.Payment.StripeSecretKey,
			WebhookSecret:  cfg.Payment.WebhookSecret,
			SuccessURL:     cfg.Payment.SuccessURL,
			CancelURL:      cfg.Payment.CancelURL,
			Currency:       cfg.Payment.Currency,
			CentsPerCredit: cfg.Payment.CentsPerCredit,
		}, appLogger)
	case "hmac":
		return hmacpay.New(hmacpay.Config{
			CheckoutBaseURL: cfg.Payment.CheckoutBaseURL,
			WebhookSecret:   cfg.Payment.WebhookSecret,
			Policy:          hmacpay.SignaturePolicy(cfg.Payment.SignaturePolicy),
		}, appLogger), nil
	default:
		return nil, fmt.Errorf("unsupported payment provider: %s", cfg.Payment.Provider)
	}
}
