package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

type SpecialMenuController struct {
	specialMenuService service.SpecialMenuService
}

func NewSpecialMenuController(specialMenuService service.SpecialMenuService) *SpecialMenuController {
	return &SpecialMenuController{
		specialMenuService: specialMenuService,
	}
}

func specialMenuInputFromForm(c *gin.Context) service.SpecialMenuInput {
	return service.SpecialMenuInput{
		Name:     c.PostForm("name"),
		Price:    c.PostForm("price"),
		ImageURL: c.PostForm("image_url"),
		IsActive: c.PostForm("is_active") != "false",
	}
}

// GetSpecialMenus returns all special menus.
// GET /api/v1/admin/special-menus
func (ctrl *SpecialMenuController) GetSpecialMenus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	menus, err := ctrl.specialMenuService.ListSpecialMenus()
	if err != nil {
		log.Error("Failed to fetch special menus", err, nil)
		apperrors.InternalError(c, "Failed to fetch special menus")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"special_menus": menus,
		"count":         len(menus),
	})
}

// CreateSpecialMenu creates a special menu from a multipart form.
// POST /api/v1/admin/special-menus
func (ctrl *SpecialMenuController) CreateSpecialMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	image, closeImage, err := imageFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The uploaded file could not be read")
		return
	}
	defer closeImage()

	menu, err := ctrl.specialMenuService.CreateSpecialMenu(c.Request.Context(), specialMenuInputFromForm(c), image)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "The image could not be uploaded, please try again")
			return
		}
		log.Error("Failed to create special menu", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "special menu")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"special_menu": menu,
	})
}

// UpdateSpecialMenu updates a special menu from a multipart form.
// PUT /api/v1/admin/special-menus/:id
func (ctrl *SpecialMenuController) UpdateSpecialMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	image, closeImage, err := imageFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The uploaded file could not be read")
		return
	}
	defer closeImage()

	menu, err := ctrl.specialMenuService.UpdateSpecialMenu(c.Request.Context(), id, specialMenuInputFromForm(c), image)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrSpecialMenuNotFound) {
			apperrors.NotFound(c, apperrors.SpecialMenuNotFound, "Special menu not found")
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "The image could not be uploaded, please try again")
			return
		}
		log.Error("Failed to update special menu", err, map[string]interface{}{
			"special_menu_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "special menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"special_menu": menu,
	})
}

// DeleteSpecialMenu removes a special menu and then its image.
// DELETE /api/v1/admin/special-menus/:id
func (ctrl *SpecialMenuController) DeleteSpecialMenu(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	err := ctrl.specialMenuService.DeleteSpecialMenu(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSpecialMenuNotFound) {
			apperrors.NotFound(c, apperrors.SpecialMenuNotFound, "Special menu not found")
			return
		}
		if errors.Is(err, service.ErrImageCleanupFailed) {
			log.Warn("Special menu deleted but image cleanup failed", map[string]interface{}{
				"special_menu_id": id,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.StorageDeleteFailed, "The special menu was removed but its image could not be cleaned up")
			return
		}
		log.Error("Failed to delete special menu", err, map[string]interface{}{
			"special_menu_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "special menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Special menu deleted",
	})
}
