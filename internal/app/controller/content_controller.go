package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

// ContentController serves the public site endpoints. No auth, reads
// only.
type ContentController struct {
	contentService service.ContentService
}

func NewContentController(contentService service.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetMenu returns every category with its menu items, in display
// order.
// GET /api/v1/menu
func (ctrl *ContentController) GetMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	menu, err := ctrl.contentService.GetMenu(c.Request.Context())
	if err != nil {
		log.Error("Failed to fetch menu", err, nil)
		apperrors.InternalError(c, "Failed to fetch the menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu": menu,
	})
}

// GetSpecialMenus returns the special menus.
// GET /api/v1/special-menus
func (ctrl *ContentController) GetSpecialMenus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	menus, err := ctrl.contentService.GetSpecialMenus(c.Request.Context())
	if err != nil {
		log.Error("Failed to fetch special menus", err, nil)
		apperrors.InternalError(c, "Failed to fetch special menus")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"special_menus": menus,
	})
}

// GetEvents returns the live music schedule.
// GET /api/v1/events
func (ctrl *ContentController) GetEvents(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	events, err := ctrl.contentService.GetEvents(c.Request.Context())
	if err != nil {
		log.Error("Failed to fetch events", err, nil)
		apperrors.InternalError(c, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
	})
}
