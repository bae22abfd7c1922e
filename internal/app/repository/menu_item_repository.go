package repository

import (
	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *model.MenuItem) error
	FindAll() ([]model.MenuItem, error)
	FindByID(id string) (*model.MenuItem, error)
	FindByCategory(categoryID string) ([]model.MenuItem, error)
	Update(item *model.MenuItem) error
	Delete(id string) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *model.MenuItem) error {
	logger.Debug("Creating menu item in database", map[string]interface{}{
		"name":        item.Name,
		"category_id": item.CategoryID,
	})

	if err := r.db.Create(item).Error; err != nil {
		logger.Error("Failed to create menu item in database", err, map[string]interface{}{
			"name":        item.Name,
			"category_id": item.CategoryID,
		})
		return err
	}

	logger.Debug("Menu item created in database", map[string]interface{}{
		"menu_item_id": item.ID,
		"name":         item.Name,
	})
	return nil
}

func (r *menuItemRepository) FindAll() ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.Order("created_at ASC").Find(&items).Error
	if err != nil {
		logger.Error("Failed to find menu items", err)
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) FindByID(id string) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		logger.Error("Failed to find menu item by ID", err, map[string]interface{}{
			"menu_item_id": id,
		})
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) FindByCategory(categoryID string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.Where("category_id = ?", categoryID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		logger.Error("Failed to find menu items by category", err, map[string]interface{}{
			"category_id": categoryID,
		})
		return nil, err
	}
	return items, nil
}

func (r *menuItemRepository) Update(item *model.MenuItem) error {
	logger.Debug("Updating menu item in database", map[string]interface{}{
		"menu_item_id": item.ID,
		"name":         item.Name,
	})

	result := r.db.Model(&model.MenuItem{}).
		Where("id = ?", item.ID).
		Select("name", "description", "price", "is_popular", "is_active", "category_id").
		Updates(item)
	if result.Error != nil {
		logger.Error("Failed to update menu item in database", result.Error, map[string]interface{}{
			"menu_item_id": item.ID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuItemRepository) Delete(id string) error {
	logger.Debug("Deleting menu item from database", map[string]interface{}{
		"menu_item_id": id,
	})

	result := r.db.Delete(&model.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete menu item from database", result.Error, map[string]interface{}{
			"menu_item_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
