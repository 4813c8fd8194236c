package main

import (
	"fmt"
	"net/http"
	"os"

	"vendstock/internal/config"
	"vendstock/internal/database"
	"vendstock/internal/handlers"
	"vendstock/internal/logger"
	"vendstock/internal/middleware"
	"vendstock/internal/services"
	"vendstock/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vendstock/internal/docs" // Import swagger docs
)

// @title           Vendstock API
// @version         1.0
// @description     Vendstock is a vending-machine inventory backend that tracks machines, the products stocked in them, and an append-only ledger of stock level changes.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	machineService := services.NewMachineService(db)
	inventoryService := services.NewInventoryService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	machineHandler := handlers.NewMachineHandler(machineService, auditService)
	productHandler := handlers.NewProductHandler(inventoryService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Machine routes
	machines := v1.Group("/machines")
	machines.POST("", machineHandler.RegisterMachine)
	machines.GET("", machineHandler.ListMachines)
	machines.GET("/:id", machineHandler.GetMachine)
	machines.PUT("/:id", machineHandler.UpdateMachine)
	machines.DELETE("/:id", machineHandler.DeleteMachine)

	// Product routes
	products := v1.Group("/products")
	products.POST("", productHandler.StockProduct)
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)
	products.POST("/:id/purchase", productHandler.PurchaseProduct)

	// Stock history ledger
	v1.GET("/stock-history", productHandler.ListStockHistory)

	log.Infof("Starting vendstock backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
