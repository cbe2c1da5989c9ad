package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"studyspace-booking/internal/adapters/http/middleware"
	"studyspace-booking/internal/adapters/http/routes"
	"studyspace-booking/internal/adapters/persistence/models"
	"studyspace-booking/internal/adapters/persistence/repositories"
	"studyspace-booking/internal/config"
	"studyspace-booking/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "studyspace-booking/docs" // Swagger docs
)

// @title StudySpace Booking API
// @version 1.0
// @description Shared study room booking service: availability queries, bookings with a daily per-user limit, and token-gated booking management.

// @host localhost:5000
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed room reference data
	if err := config.SeedRooms(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed rooms: %v", err)
	}

	// Start booking retention purger
	retention := services.NewRetentionService(
		repositories.NewBookingRepository(db),
		cfg.Booking.RetentionDays,
	)
	retention.Start()
	defer retention.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "StudySpace Booking API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
