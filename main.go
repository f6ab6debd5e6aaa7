package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vault-api/internal/config"
	"vault-api/internal/constants"
	"vault-api/internal/database"
	"vault-api/internal/handlers"
	"vault-api/internal/repository"
	"vault-api/internal/routes"
	"vault-api/internal/services"
	"vault-api/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	pkgValidator "github.com/kerimovok/go-pkg-utils/validator"
)

func init() {
	// Load all configs
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	// Validate environment variables
	if err := pkgValidator.ValidateConfig(constants.EnvValidationRules); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}
}

func setupApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // 100MB limit for file uploads
	})

	// Middleware
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(healthcheck.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(logger.New())

	return app
}

func newContentStore(cfg config.StorageConfig) (storage.ContentStore, error) {
	switch cfg.Driver {
	case "s3":
		return storage.NewS3Store(
			context.Background(),
			cfg.S3.Bucket,
			cfg.S3.Region,
			pkgConfig.GetEnv("S3_ACCESS_KEY"),
			pkgConfig.GetEnv("S3_SECRET_KEY"),
		)
	case "memory":
		return storage.NewMemoryStore(), nil
	case "disk", "":
		return storage.NewDiskStore(cfg.UploadDir, cfg.CreateDirs)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func main() {
	vaultConfig := config.GetConfig().Vault

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Content store
	contentStore, err := newContentStore(vaultConfig.Storage)
	if err != nil {
		log.Fatalf("failed to initialize content store: %v", err)
	}

	// Repositories
	fileRepo := repository.NewFileRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	tokenTTL := time.Duration(vaultConfig.Auth.TokenTTLMinutes) * time.Minute
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	authService := services.NewAuthService(userRepo, pkgConfig.GetEnv("JWT_SECRET"), tokenTTL)
	fileService := services.NewFileService(fileRepo, contentStore, vaultConfig.Validation)
	queryService := services.NewQueryService(fileRepo)
	syncService := services.NewSyncService(queryService)

	// Setup Fiber app
	app := setupApp()

	// Setup routes
	routes.SetupRoutes(
		app,
		authService,
		handlers.NewAuthHandler(authService),
		handlers.NewFileHandler(fileService, queryService),
		handlers.NewSyncHandler(syncService),
	)

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")

		// Shutdown the server
		if err := app.Shutdown(); err != nil {
			log.Printf("error during server shutdown: %v", err)
		}

		log.Println("Server gracefully stopped")
		os.Exit(0)
	}()

	// Start server
	if err := app.Listen(":" + pkgConfig.GetEnv("PORT")); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to start server: %v", err)
	}
}
