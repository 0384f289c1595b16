package routes

import (
	"github.com/gofiber/fiber/v2"

	"studytrack/backend/config"
	"studytrack/backend/controllers"
	"studytrack/backend/identity"
	"studytrack/backend/middleware"
	"studytrack/backend/progress"
	"studytrack/backend/session"
)

func SetupRoutes(app *fiber.App, dir *identity.Directory, binder *session.Binder, store *progress.Store, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(dir, binder, cfg)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	app.Post("/api/auth/logout", authMiddleware, authController.Logout)

	// Study routes
	studyController := controllers.NewStudyController(store, binder)
	study := app.Group("/api/study", authMiddleware)
	study.Get("/items", studyController.GetItems)
	study.Get("/disciplines", studyController.GetDisciplines)
	study.Post("/items/:id/toggle", studyController.ToggleItem)

	// Progress routes
	progressController := controllers.NewProgressController(store, binder)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetOverview)
}
