package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

type StorageController struct {
	storageService service.StorageService
}

func NewStorageController(storageService service.StorageService) *StorageController {
	return &StorageController{
		storageService: storageService,
	}
}

// GetUsage reports the image bucket consumption against the quota.
// GET /api/v1/admin/storage/usage
func (ctrl *StorageController) GetUsage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	usage, err := ctrl.storageService.Usage(c.Request.Context())
	if err != nil {
		log.Error("Failed to compute storage usage", err, nil)
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.StorageUsageFailed, "Storage usage is currently unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usage": usage,
	})
}
