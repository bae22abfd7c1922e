package repository

import (
	"fmt"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindAllForMenu() ([]model.CategoryForMenu, error)
	FindAllWithItems() ([]model.Category, error)
	FindByID(id string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(id string) error
	CountItems(id string) int64
	Reorder(ids []string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"title": category.Title,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"title": category.Title,
		})
		return err
	}

	logger.Debug("Category created in database", map[string]interface{}{
		"category_id": category.ID,
		"title":       category.Title,
	})
	return nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("sort_order ASC").Order("created_at ASC").Find(&categories).Error
	if err != nil {
		logger.Error("Failed to find categories", err)
		return nil, err
	}
	return categories, nil
}

// FindAllForMenu returns only id and title, enough to fill the
// category dropdown without fetching images.
func (r *categoryRepository) FindAllForMenu() ([]model.CategoryForMenu, error) {
	var categories []model.CategoryForMenu
	err := r.db.Model(&model.Category{}).
		Select("id", "title").
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		logger.Error("Failed to find categories for menu projection", err)
		return nil, err
	}
	return categories, nil
}

// FindAllWithItems is the public menu read: every category with its
// items preloaded in a single pass, ordered for display.
func (r *categoryRepository) FindAllWithItems() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.created_at ASC")
		}).
		Order("sort_order ASC").Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		logger.Error("Failed to find categories with items", err)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id string) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		logger.Error("Failed to find category by ID", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	logger.Debug("Updating category in database", map[string]interface{}{
		"category_id": category.ID,
		"title":       category.Title,
	})

	result := r.db.Model(&model.Category{}).
		Where("id = ?", category.ID).
		Select("title", "description", "image_url").
		Updates(category)
	if result.Error != nil {
		logger.Error("Failed to update category in database", result.Error, map[string]interface{}{
			"category_id": category.ID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(id string) error {
	logger.Debug("Deleting category from database", map[string]interface{}{
		"category_id": id,
	})

	result := r.db.Delete(&model.Category{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete category from database", result.Error, map[string]interface{}{
			"category_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountItems reports how many menu items reference the category. The
// figure is a display statistic only: any query failure degrades to 0
// instead of propagating.
func (r *categoryRepository) CountItems(id string) int64 {
	var count int64
	err := r.db.Model(&model.MenuItem{}).Where("category_id = ?", id).Count(&count).Error
	if err != nil {
		logger.Warn("Failed to count category items, reporting 0", map[string]interface{}{
			"category_id": id,
			"error":       err.Error(),
		})
		return 0
	}
	return count
}

// Reorder persists the supplied total order by writing sort_order =
// position for every id, one update at a time. The writes are not
// atomic: on failure the returned error names the position reached so
// the caller can retry the remainder.
func (r *categoryRepository) Reorder(ids []string) error {
	logger.Debug("Reordering categories", map[string]interface{}{
		"count": len(ids),
	})

	for i, id := range ids {
		result := r.db.Model(&model.Category{}).
			Where("id = ?", id).
			Update("sort_order", i+1)
		if result.Error != nil {
			logger.Error("Failed to update category sort order", result.Error, map[string]interface{}{
				"category_id": id,
				"position":    i + 1,
			})
			return fmt.Errorf("reorder stopped at position %d of %d (category %s): %w",
				i+1, len(ids), id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("reorder stopped at position %d of %d (category %s): %w",
				i+1, len(ids), id, gorm.ErrRecordNotFound)
		}
	}

	logger.Debug("Categories reordered", map[string]interface{}{
		"count": len(ids),
	})
	return nil
}
