package router

import (
	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/config"
	"github.com/misircafe/misircafe-backend/internal/app/controller"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

type Router struct {
	authController        *controller.AuthController
	contentController     *controller.ContentController
	categoryController    *controller.CategoryController
	menuItemController    *controller.MenuItemController
	specialMenuController *controller.SpecialMenuController
	eventController       *controller.EventController
	storageController     *controller.StorageController
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	contentController *controller.ContentController,
	categoryController *controller.CategoryController,
	menuItemController *controller.MenuItemController,
	specialMenuController *controller.SpecialMenuController,
	eventController *controller.EventController,
	storageController *controller.StorageController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:        authController,
		contentController:     contentController,
		categoryController:    categoryController,
		menuItemController:    menuItemController,
		specialMenuController: specialMenuController,
		eventController:       eventController,
		storageController:     storageController,
		authMiddleware:        authMiddleware,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "MISIR CAFE API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		// public site
		v1.GET("/menu", r.contentController.GetMenu)
		v1.GET("/special-menus", r.contentController.GetSpecialMenus)
		v1.GET("/events", r.contentController.GetEvents)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate())
		admin.Use(r.authMiddleware.RequireRole("admin"))
		{
			categories := admin.Group("/categories")
			{
				categories.GET("", r.categoryController.GetCategories)
				categories.POST("", r.categoryController.CreateCategory)
				categories.PUT("/order", r.categoryController.ReorderCategories)
				categories.PUT("/:id", r.categoryController.UpdateCategory)
				categories.DELETE("/:id", r.categoryController.DeleteCategory)
				categories.GET("/:id/item-count", r.categoryController.GetItemCount)
			}

			menuItems := admin.Group("/menu-items")
			{
				menuItems.GET("", r.menuItemController.GetMenuItems)
				menuItems.POST("", r.menuItemController.CreateMenuItem)
				menuItems.PUT("/:id", r.menuItemController.UpdateMenuItem)
				menuItems.DELETE("/:id", r.menuItemController.DeleteMenuItem)
			}

			specialMenus := admin.Group("/special-menus")
			{
				specialMenus.GET("", r.specialMenuController.GetSpecialMenus)
				specialMenus.POST("", r.specialMenuController.CreateSpecialMenu)
				specialMenus.PUT("/:id", r.specialMenuController.UpdateSpecialMenu)
				specialMenus.DELETE("/:id", r.specialMenuController.DeleteSpecialMenu)
			}

			events := admin.Group("/events")
			{
				events.GET("", r.eventController.GetEvents)
				events.POST("", r.eventController.CreateEvent)
				events.PUT("/:id", r.eventController.UpdateEvent)
				events.DELETE("/:id", r.eventController.DeleteEvent)
			}

			admin.GET("/storage/usage", r.storageController.GetUsage)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
