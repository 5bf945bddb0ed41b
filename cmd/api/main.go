package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/service"
	"backend/internal/storage"
	"backend/internal/websocket"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Psychology Coaching Booking API
// @version         1.0
// @description     Booking, membership and site content API for a psychological coaching studio.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	userStore, err := storage.OpenUserStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}
	bookingStore, err := storage.OpenBookingStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to open booking store: %v", err)
	}
	configStore, err := storage.OpenConfigStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to open config store: %v", err)
	}
	log.Printf("Stores loaded from %s (%d users, %d bookings, %d configs)",
		dataDir, userStore.Count(), bookingStore.Count(), configStore.Count())

	// Seed the default site content, first boot only
	if inserted, err := storage.SeedDefaultConfigs(configStore); err != nil {
		log.Fatalf("Failed to seed default configs: %v", err)
	} else if inserted > 0 {
		log.Printf("Seeded %d default config items", inserted)
	}

	// Set up WebSocket Hub for admin dashboard notifications
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Storage -> Service -> Handler)
	userService := service.NewUserService(userStore, bookingStore)
	bookingService := service.NewBookingService(bookingStore, configStore, wsHub)
	configService := service.NewConfigService(configStore)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	configHandler := handler.NewConfigHandler(configService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// API Routing
	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)
	configHandler.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
