package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

type MenuItemController struct {
	menuItemService service.MenuItemService
}

func NewMenuItemController(menuItemService service.MenuItemService) *MenuItemController {
	return &MenuItemController{
		menuItemService: menuItemService,
	}
}

// MenuItemRequest is the JSON body for create and update. Price is a
// display string ("450 TL"), not a number.
type MenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	IsPopular   bool   `json:"is_popular"`
	IsActive    bool   `json:"is_active"`
	CategoryID  string `json:"category_id"`
}

func (r MenuItemRequest) toInput() service.MenuItemInput {
	return service.MenuItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		IsPopular:   r.IsPopular,
		IsActive:    r.IsActive,
		CategoryID:  r.CategoryID,
	}
}

// GetMenuItems returns all menu items.
// GET /api/v1/admin/menu-items
func (ctrl *MenuItemController) GetMenuItems(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items, err := ctrl.menuItemService.ListMenuItems()
	if err != nil {
		log.Error("Failed to fetch menu items", err, nil)
		apperrors.InternalError(c, "Failed to fetch menu items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu_items": items,
		"count":      len(items),
	})
}

// CreateMenuItem creates a menu item.
// POST /api/v1/admin/menu-items
func (ctrl *MenuItemController) CreateMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	item, err := ctrl.menuItemService.CreateMenuItem(c.Request.Context(), req.toInput())
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		log.Error("Failed to create menu item", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"menu_item": item,
	})
}

// UpdateMenuItem updates a menu item.
// PUT /api/v1/admin/menu-items/:id
func (ctrl *MenuItemController) UpdateMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	item, err := ctrl.menuItemService.UpdateMenuItem(c.Request.Context(), id, req.toInput())
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		log.Error("Failed to update menu item", err, map[string]interface{}{
			"menu_item_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"menu_item": item,
	})
}

// DeleteMenuItem removes a menu item.
// DELETE /api/v1/admin/menu-items/:id
func (ctrl *MenuItemController) DeleteMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.menuItemService.DeleteMenuItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
			return
		}
		log.Error("Failed to delete menu item", err, map[string]interface{}{
			"menu_item_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "menu item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu item deleted",
	})
}
