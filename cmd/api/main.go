package main

import (
	"log"

	_ "petboard/api/swagger" // swagger docs
	"petboard/internal/config"
	"petboard/internal/database"
	"petboard/internal/handler"
	"petboard/internal/repository"
	"petboard/internal/service"
	"petboard/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Pet Clinic Sales Dashboard API
// @version         1.0
// @description     Aggregated KPI, chart and top-product data over clinic bookings, with click-through navigation to filtered booking lists.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	bookingRepo := repository.NewBookingRepository(db)
	productLineRepo := repository.NewProductLineRepository(db)

	navigator := service.NewHubNavigator(wsHub)
	kpiService := service.NewKpiService(bookingRepo, productLineRepo, cfg, navigator)
	chartService := service.NewChartService(bookingRepo, productLineRepo, cfg, navigator)
	rankingService := service.NewRankingService(productLineRepo, cfg)

	// Initialize Handlers
	dashboardHandler := handler.NewDashboardHandler(kpiService, chartService, rankingService)
	bookingHandler := handler.NewBookingHandler(bookingRepo)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
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

	// WebSocket endpoint for navigation/refresh events
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	dashboardHandler.RegisterRoutes(router.Group(""))
	bookingHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
