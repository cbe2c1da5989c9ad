package routes

import (
	"studyspace-booking/internal/adapters/http/handlers"
	"studyspace-booking/internal/adapters/http/middleware"
	"studyspace-booking/internal/adapters/persistence/repositories"
	"studyspace-booking/internal/config"
	"studyspace-booking/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	roomService := services.NewRoomService(roomRepo, bookingRepo)
	bookingService := services.NewBookingService(bookingRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Public routes
	authLimiter := middleware.AuthRateLimiter()
	app.Post("/register", authLimiter, authHandler.Register)
	app.Post("/login", authLimiter, authHandler.Login)
	app.Get("/rooms", roomHandler.AvailableRooms)

	// Protected routes (bearer token required)
	authRequired := middleware.AuthMiddleware(cfg)
	app.Get("/bookings", authRequired, bookingHandler.List)
	app.Post("/bookings", authRequired, bookingHandler.Create)
	app.Delete("/bookings/:id", authRequired, bookingHandler.Delete)
	app.Get("/user_bookings", authRequired, bookingHandler.ListForUser)
}
