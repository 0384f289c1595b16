package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"studytrack/backend/catalog"
	"studytrack/backend/config"
	"studytrack/backend/identity"
	"studytrack/backend/middleware"
	"studytrack/backend/progress"
	"studytrack/backend/routes"
	"studytrack/backend/session"
	"studytrack/backend/storage"
	"studytrack/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Persistence slot for the progress record
	records, err := storage.NewSlotStore(db, logger)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}

	// Core wiring: catalog -> store -> session binder
	store := progress.NewStore(records, logger)
	dir, err := identity.NewDirectory()
	if err != nil {
		log.Fatalf("Error building identity directory: %v", err)
	}
	binder := session.NewBinder(catalog.NewProvider(), store, logger)

	// Completion feedback, the server-side stand-in for the client toast
	store.Subscribe(func(ev progress.CompletionChanged) {
		state := "completed"
		if !ev.Completed {
			state = "unmarked"
		}
		logger.Printf("progress: %q %s", ev.ItemName, state)
	})

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, dir, binder, store, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
