package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

type ReorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

// GetCategories returns all categories ordered for display.
// GET /api/v1/admin/categories
// GET /api/v1/admin/categories?for_menu=true returns the id/title
// projection the menu item form uses for its category picker.
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if c.Query("for_menu") == "true" {
		categories, err := ctrl.categoryService.ListCategoriesForMenu()
		if err != nil {
			log.Error("Failed to fetch categories for menu picker", err, nil)
			apperrors.InternalError(c, "Failed to fetch categories")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"categories": categories,
			"count":      len(categories),
		})
		return
	}

	categories, err := ctrl.categoryService.ListCategories()
	if err != nil {
		log.Error("Failed to fetch categories", err, nil)
		apperrors.InternalError(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory creates a category from a multipart form. An attached
// "image" file wins over a manually supplied image_url field.
// POST /api/v1/admin/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input := service.CategoryInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImageURL:    c.PostForm("image_url"),
	}

	image, closeImage, err := imageFromForm(c)
	if err != nil {
		log.Warn("Unreadable image in form", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The uploaded file could not be read")
		return
	}
	defer closeImage()

	category, err := ctrl.categoryService.CreateCategory(c.Request.Context(), input, image)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			log.Error("Category image upload failed", err, nil)
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "The image could not be uploaded, please try again")
			return
		}
		log.Error("Failed to create category", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"category": category,
	})
}

// UpdateCategory updates a category from a multipart form.
// PUT /api/v1/admin/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	input := service.CategoryInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImageURL:    c.PostForm("image_url"),
	}

	image, closeImage, err := imageFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The uploaded file could not be read")
		return
	}
	defer closeImage()

	category, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), id, input, image)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "The image could not be uploaded, please try again")
			return
		}
		log.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// DeleteCategory removes a category. Menu items that referenced it are
// left in place with a dangling category id. A failed image cleanup is
// reported even though the row is already gone.
// DELETE /api/v1/admin/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	err := ctrl.categoryService.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrImageCleanupFailed) {
			log.Warn("Category deleted but image cleanup failed", map[string]interface{}{
				"category_id": id,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.StorageDeleteFailed, "The category was removed but its image could not be cleaned up")
			return
		}
		log.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted",
	})
}

// ReorderCategories persists the given id order as the display order.
// PUT /api/v1/admin/categories/order
func (ctrl *CategoryController) ReorderCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid reorder payload")
		return
	}

	if err := ctrl.categoryService.ReorderCategories(c.Request.Context(), req.Order); err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		log.Error("Failed to reorder categories", err, map[string]interface{}{
			"count": len(req.Order),
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order saved",
	})
}

// GetItemCount reports how many menu items reference the category. The
// admin UI shows it in the delete confirmation dialog; a count of zero
// is also what it gets when the lookup fails.
// GET /api/v1/admin/categories/:id/item-count
func (ctrl *CategoryController) GetItemCount(c *gin.Context) {
	id := c.Param("id")

	count := ctrl.categoryService.CountItems(id)
	c.JSON(http.StatusOK, gin.H{
		"category_id": id,
		"item_count":  count,
	})
}
