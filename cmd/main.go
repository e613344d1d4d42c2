package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/vcdice-69/Parked-Up/internal/handler"
	"github.com/vcdice-69/Parked-Up/internal/middleware"
	"github.com/vcdice-69/Parked-Up/internal/store"
	"github.com/vcdice-69/Parked-Up/pkg/config"
	"github.com/vcdice-69/Parked-Up/pkg/database"
	"github.com/vcdice-69/Parked-Up/pkg/logger"
	"github.com/vcdice-69/Parked-Up/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting account service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	db, err := database.InitDB(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Build stores and handlers
	accounts := store.NewAccountStore(db)
	favourites := store.NewFavouriteStore(db)
	h := handler.New(accounts, favourites)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
	}))
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	// Account routes
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.GET("/profile/:email", h.GetProfile)
	e.POST("/update-profile", h.UpdateProfile)
	e.DELETE("/delete-account/:email", h.DeleteAccount)

	// Favourite routes
	e.POST("/add-favourite", h.AddFavourite)
	e.POST("/remove-favourite", h.RemoveFavourite)
	e.GET("/favourites/:email", h.GetFavourites)

	// Get server port from configuration
	port := cfg.Server.Port

	// Start server
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
