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

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService interface {
	ListCategories() ([]model.Category, error)
	ListCategoriesForMenu() ([]model.CategoryForMenu, error)
	CreateCategory(ctx context.Context, input CategoryInput, image *ImageUpload) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, input CategoryInput, image *ImageUpload) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CountItems(id string) int64
	ReorderCategories(ctx context.Context, ids []string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	images       ImageStore
	cache        ContentCache
}

func NewCategoryService(categoryRepo repository.CategoryRepository, images ImageStore, cache ContentCache) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		images:       images,
		cache:        cache,
	}
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) ListCategoriesForMenu() ([]model.CategoryForMenu, error) {
	return s.categoryRepo.FindAllForMenu()
}

// CreateCategory runs the admin add workflow: validate, upload the
// selected image when present, persist, invalidate the public menu.
// Nothing touches the network until validation passes.
func (s *categoryService) CreateCategory(ctx context.Context, input CategoryInput, image *ImageUpload) (*model.Category, error) {
	if errs := mergeFieldErrors(validateCategoryInput(input), validateImageFile(image)); errs != nil {
		return nil, errs
	}

	imageURL, err := resolveImageURL(ctx, s.images, image, input.ImageURL, storage.PrefixCategory)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, FieldErrors{"image_url": "an image is required"}
	}

	category := &model.Category{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    imageURL,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		logger.Error("Failed to create category", err, map[string]interface{}{
			"title": input.Title,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"title":       category.Title,
	})
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, input CategoryInput, image *ImageUpload) (*model.Category, error) {
	if errs := mergeFieldErrors(validateCategoryInput(input), validateImageFile(image)); errs != nil {
		return nil, errs
	}

	imageURL, err := resolveImageURL(ctx, s.images, image, input.ImageURL, storage.PrefixCategory)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, FieldErrors{"image_url": "an image is required"}
	}

	category := &model.Category{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    imageURL,
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: category not found", map[string]interface{}{
				"category_id": id,
			})
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	logger.Info("Category updated", map[string]interface{}{
		"category_id": id,
		"title":       input.Title,
	})
	return category, nil
}

// DeleteCategory removes the row first, then its image blob. The two
// stores are independent, so a failed blob removal after a successful
// row delete is reported as an overall failure even though the row
// stays gone; the nightly sweep picks up whatever is stranded.
// Child menu items are intentionally left in place.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	if children := s.categoryRepo.CountItems(id); children > 0 {
		logger.Warn("Deleting category that still has menu items; items will be orphaned", map[string]interface{}{
			"category_id": id,
			"item_count":  children,
		})
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		logger.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	if err := cleanupImage(ctx, s.images, category.ImageURL, "category", id); err != nil {
		return err
	}

	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return nil
}

func (s *categoryService) CountItems(id string) int64 {
	return s.categoryRepo.CountItems(id)
}

// ReorderCategories persists the drag-reorder result. The writes are
// sequential; a partial failure surfaces the position reached so the
// admin can retry.
func (s *categoryService) ReorderCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return FieldErrors{"order": "ordered category list is required"}
	}

	if err := s.categoryRepo.Reorder(ids); err != nil {
		logger.Error("Failed to reorder categories", err, map[string]interface{}{
			"count": len(ids),
		})
		return err
	}

	invalidateContent(ctx, s.cache, cacheKeyMenu)

	logger.Info("Categories reordered", map[string]interface{}{
		"count": len(ids),
	})
	return nil
}

func mergeFieldErrors(a, b FieldErrors) FieldErrors {
	if a == nil && b == nil {
		return nil
	}
	merged := FieldErrors{}
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}
