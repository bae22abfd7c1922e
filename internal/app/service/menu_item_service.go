package service

import (
	"context"
	"errors"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuItemService interface {
	ListMenuItems() ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, input MenuItemInput) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, input MenuItemInput) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
}

type menuItemService struct {
	menuItemRepo repository.MenuItemRepository
	categoryRepo repository.CategoryRepository
	cache        ContentCache
}

func NewMenuItemService(menuItemRepo repository.MenuItemRepository, categoryRepo repository.CategoryRepository, cache ContentCache) MenuItemService {
	return &menuItemService{
		menuItemRepo: menuItemRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func (s *menuItemService) ListMenuItems() ([]model.MenuItem, error) {
	return s.menuItemRepo.FindAll()
}

// CreateMenuItem validates the form and checks the referenced category
// exists before inserting. Menu items carry no image, so there is no
// upload step.
func (s *menuItemService) CreateMenuItem(ctx context.Context, input MenuItemInput) (*model.MenuItem, error) {
	if errs := validateMenuItemInput(input); errs != nil {
		return nil, errs
	}

	if err := s.checkCategoryExists(input.CategoryID); err != nil {
		return nil, err
	}

	item := &model.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		IsPopular:   input.IsPopular,
		IsActive:    input.IsActive,
		CategoryID:  input.CategoryID,
	}

	if err := s.menuItemRepo.Create(item); err != nil {
		logger.Error("Failed to create menu item", err, map[string]interface{}{
			"name": input.Name,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	logger.Info("Menu item created", map[string]interface{}{
		"menu_item_id": item.ID,
		"name":         item.Name,
		"category_id":  item.CategoryID,
	})
	return item, nil
}

func (s *menuItemService) UpdateMenuItem(ctx context.Context, id string, input MenuItemInput) (*model.MenuItem, error) {
	if errs := validateMenuItemInput(input); errs != nil {
		return nil, errs
	}

	if err := s.checkCategoryExists(input.CategoryID); err != nil {
		return nil, err
	}

	item := &model.MenuItem{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		IsPopular:   input.IsPopular,
		IsActive:    input.IsActive,
		CategoryID:  input.CategoryID,
	}

	if err := s.menuItemRepo.Update(item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: menu item not found", map[string]interface{}{
				"menu_item_id": id,
			})
			return nil, ErrMenuItemNotFound
		}
		logger.Error("Failed to update menu item", err, map[string]interface{}{
			"menu_item_id": id,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	logger.Info("Menu item updated", map[string]interface{}{
		"menu_item_id": id,
		"name":         input.Name,
	})
	return item, nil
}

func (s *menuItemService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.menuItemRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		logger.Error("Failed to delete menu item", err, map[string]interface{}{
			"menu_item_id": id,
		})
		return err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	logger.Info("Menu item deleted", map[string]interface{}{
		"menu_item_id": id,
	})
	return nil
}

func (s *menuItemService) checkCategoryExists(categoryID string) error {
	_, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FieldErrors{"category_id": "the selected category does not exist"}
		}
		return err
	}
	return nil
}
