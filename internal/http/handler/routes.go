package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"programboard/internal/auth"
	"programboard/internal/config"
	"programboard/internal/http/middleware"
	"programboard/internal/service"
)

// RegisterRoutes attaches the HTTP routes to the provided Fiber app.
// Handlers stay thin; business logic lives in the services.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	programs service.ProgramService,
	authSvc service.AuthService,
	tokens *auth.TokenManager,
	observe UploadObserver,
	cfg *config.AppConfig,
) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	// Public surface
	api.Get("/programs", PublicPrograms(programs))
	api.Get("/qr-code", QRCode(cfg.BaseURL))

	// Admin surface
	api.Post("/admin/login", Login(authSvc, tokens))
	api.Post("/admin/logout", Logout())

	admin := api.Group("/admin", middleware.RequireAuth(tokens))
	admin.Post("/upload", UploadProgram(programs, cfg.Storage.Dir, cfg.Upload.MaxSizeBytes, observe))
	admin.Get("/programs", AdminPrograms(programs))
	admin.Delete("/programs/:id", DeleteProgram(programs))
}
