package service

import (
	"context"
	"errors"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/internal/storage"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrSpecialMenuNotFound = errors.New("special menu not found")

type SpecialMenuService interface {
	ListSpecialMenus() ([]model.SpecialMenu, error)
	CreateSpecialMenu(ctx context.Context, input SpecialMenuInput, image *ImageUpload) (*model.SpecialMenu, error)
	UpdateSpecialMenu(ctx context.Context, id string, input SpecialMenuInput, image *ImageUpload) (*model.SpecialMenu, error)
	DeleteSpecialMenu(ctx context.Context, id string) error
}

type specialMenuService struct {
	specialMenuRepo repository.SpecialMenuRepository
	images          ImageStore
	cache           ContentCache
}

func NewSpecialMenuService(specialMenuRepo repository.SpecialMenuRepository, images ImageStore, cache ContentCache) SpecialMenuService {
	return &specialMenuService{
		specialMenuRepo: specialMenuRepo,
		images:          images,
		cache:           cache,
	}
}

func (s *specialMenuService) ListSpecialMenus() ([]model.SpecialMenu, error) {
	return s.specialMenuRepo.FindAll()
}

func (s *specialMenuService) CreateSpecialMenu(ctx context.Context, input SpecialMenuInput, image *ImageUpload) (*model.SpecialMenu, error) {
	if errs := mergeFieldErrors(validateSpecialMenuInput(input), validateImageFile(image)); errs != nil {
		return nil, errs
	}

	imageURL, err := resolveImageURL(ctx, s.images, image, input.ImageURL, storage.PrefixSpecialMenu)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, FieldErrors{"image_url": "an image is required"}
	}

	menu := &model.SpecialMenu{
		Name:     input.Name,
		Price:    input.Price,
		ImageURL: imageURL,
		IsActive: input.IsActive,
	}

	if err := s.specialMenuRepo.Create(menu); err != nil {
		logger.Error("Failed to create special menu", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeySpecialMenus)

	logger.Info("Special menu created", map[string]interface{}{
		"special_menu_id": menu.ID,
		"name":            menu.Name,
	})
	return menu, nil
}

func (s *specialMenuService) UpdateSpecialMenu(ctx context.Context, id string, input SpecialMenuInput, image *ImageUpload) (*model.SpecialMenu, error) {
	if errs := mergeFieldErrors(validateSpecialMenuInput(input), validateImageFile(image)); errs != nil {
		return nil, errs
	}

	imageURL, err := resolveImageURL(ctx, s.images, image, input.ImageURL, storage.PrefixSpecialMenu)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, FieldErrors{"image_url": "an image is required"}
	}

	menu := &model.SpecialMenu{
		ID:       id,
		Name:     input.Name,
		Price:    input.Price,
		ImageURL: imageURL,
		IsActive: input.IsActive,
	}

	if err := s.specialMenuRepo.Update(menu); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: special menu not found", map[string]interface{}{
				"special_menu_id": id,
			})
			return nil, ErrSpecialMenuNotFound
		}
		logger.Error("Failed to update special menu", err, map[string]interface{}{
			"special_menu_id": id,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeySpecialMenus)

	logger.Info("Special menu updated", map[string]interface{}{
		"special_menu_id": id,
		"name":            input.Name,
	})
	return menu, nil
}

// DeleteSpecialMenu follows the same row-then-blob order as category
// deletion, with the same overall-failure reporting when the blob
// cannot be removed.
func (s *specialMenuService) DeleteSpecialMenu(ctx context.Context, id string) error {
	menu, err := s.specialMenuRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpecialMenuNotFound
		}
		return err
	}

	if err := s.specialMenuRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpecialMenuNotFound
		}
		logger.Error("Failed to delete special menu", err, map[string]interface{}{
			"special_menu_id": id,
		})
		return err
	}

	invalidateContent(ctx, s.cache, cacheKeySpecialMenus)

	if err := cleanupImage(ctx, s.images, menu.ImageURL, "special_menu", id); err != nil {
		return err
	}

	logger.Info("Special menu deleted", map[string]interface{}{
		"special_menu_id": id,
	})
	return nil
}
