package repository

import (
	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"gorm.io/gorm"
)

type SpecialMenuRepository interface {
	Create(menu *model.SpecialMenu) error
	FindAll() ([]model.SpecialMenu, error)
	FindByID(id string) (*model.SpecialMenu, error)
	Update(menu *model.SpecialMenu) error
	Delete(id string) error
}

type specialMenuRepository struct {
	db *gorm.DB
}

func NewSpecialMenuRepository(db *gorm.DB) SpecialMenuRepository {
	return &specialMenuRepository{db: db}
}

func (r *specialMenuRepository) Create(menu *model.SpecialMenu) error {
	logger.Debug("Creating special menu in database", map[string]interface{}{
		"name": menu.Name,
	})

	if err := r.db.Create(menu).Error; err != nil {
		logger.Error("Failed to create special menu in database", err, map[string]interface{}{
			"name": menu.Name,
		})
		return err
	}

	logger.Debug("Special menu created in database", map[string]interface{}{
		"special_menu_id": menu.ID,
		"name":            menu.Name,
	})
	return nil
}

func (r *specialMenuRepository) FindAll() ([]model.SpecialMenu, error) {
	var menus []model.SpecialMenu
	err := r.db.Order("created_at ASC").Find(&menus).Error
	if err != nil {
		logger.Error("Failed to find special menus", err)
		return nil, err
	}
	return menus, nil
}

func (r *specialMenuRepository) FindByID(id string) (*model.SpecialMenu, error) {
	var menu model.SpecialMenu
	err := r.db.First(&menu, "id = ?", id).Error
	if err != nil {
		logger.Error("Failed to find special menu by ID", err, map[string]interface{}{
			"special_menu_id": id,
		})
		return nil, err
	}
	return &menu, nil
}

func (r *specialMenuRepository) Update(menu *model.SpecialMenu) error {
	logger.Debug("Updating special menu in database", map[string]interface{}{
		"special_menu_id": menu.ID,
		"name":            menu.Name,
	})

	result := r.db.Model(&model.SpecialMenu{}).
		Where("id = ?", menu.ID).
		Select("name", "price", "image_url", "is_active").
		Updates(menu)
	if result.Error != nil {
		logger.Error("Failed to update special menu in database", result.Error, map[string]interface{}{
			"special_menu_id": menu.ID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *specialMenuRepository) Delete(id string) error {
	logger.Debug("Deleting special menu from database", map[string]interface{}{
		"special_menu_id": id,
	})

	result := r.db.Delete(&model.SpecialMenu{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete special menu from database", result.Error, map[string]interface{}{
			"special_menu_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
