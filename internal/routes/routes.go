package routes

import (
	"time"

	"vault-api/internal/handlers"
	"vault-api/internal/middleware"
	"vault-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

func SetupRoutes(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	fileHandler *handlers.FileHandler,
	syncHandler *handlers.SyncHandler,
) {
	// API routes group
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "vault-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// Auth routes
	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/validate", authHandler.Validate)

	protected := middleware.Protected(authService)

	// File routes
	files := v1.Group("/files", protected)
	files.Post("/", fileHandler.UploadFile)
	files.Get("/", fileHandler.ListFiles)
	files.Get("/:id", fileHandler.GetFile)
	files.Get("/:id/download", fileHandler.DownloadFile)
	files.Put("/:id", fileHandler.UpdateFile)
	files.Delete("/:id", fileHandler.DeleteFile)

	// Sync routes
	sync := v1.Group("/sync", protected)
	sync.Post("/compare", syncHandler.Compare)
	sync.Get("/remote-files", syncHandler.RemoteFiles)
}
