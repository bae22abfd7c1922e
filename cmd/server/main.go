package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/misircafe/misircafe-backend/config"
	"github.com/misircafe/misircafe-backend/internal/app/controller"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	"github.com/misircafe/misircafe-backend/internal/db"
	"github.com/misircafe/misircafe-backend/internal/middleware"
	"github.com/misircafe/misircafe-backend/internal/router"
	"github.com/misircafe/misircafe-backend/internal/scheduler"
	"github.com/misircafe/misircafe-backend/internal/storage"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"github.com/misircafe/misircafe-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting MISIR CAFE Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Optional content cache
	var contentCache service.ContentCache
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, content caching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			contentCache = redis.NewCache(redis.GetClient())
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close redis connection", err)
				}
			}()
		}
	}

	// Image storage
	imageStore := storage.NewS3Storage(cfg.S3)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	menuItemRepo := repository.NewMenuItemRepository(db.GetDB())
	specialMenuRepo := repository.NewSpecialMenuRepository(db.GetDB())
	eventRepo := repository.NewEventRepository(db.GetDB())

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin, cfg.JWT)
	if err != nil {
		logger.Fatal("Failed to initialize auth service", err)
	}
	contentService := service.NewContentService(categoryRepo, specialMenuRepo, eventRepo, contentCache)
	categoryService := service.NewCategoryService(categoryRepo, imageStore, contentCache)
	menuItemService := service.NewMenuItemService(menuItemRepo, categoryRepo, contentCache)
	specialMenuService := service.NewSpecialMenuService(specialMenuRepo, imageStore, contentCache)
	eventService := service.NewEventService(eventRepo, imageStore, contentCache)
	storageService := service.NewStorageService(imageStore, cfg.Storage.QuotaMB)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	contentController := controller.NewContentController(contentService)
	categoryController := controller.NewCategoryController(categoryService)
	menuItemController := controller.NewMenuItemController(menuItemService)
	specialMenuController := controller.NewSpecialMenuController(specialMenuService)
	eventController := controller.NewEventController(eventService)
	storageController := controller.NewStorageController(storageService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		contentController,
		categoryController,
		menuItemController,
		specialMenuController,
		eventController,
		storageController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Nightly storage audit
	sweeper := scheduler.NewStorageSweepScheduler(
		imageStore,
		categoryRepo,
		specialMenuRepo,
		eventRepo,
		cfg.Storage.SweepSchedule,
		cfg.Storage.QuotaMB,
	)
	if err := sweeper.Start(); err != nil {
		logger.Warn("Storage sweep scheduler not running", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer sweeper.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
