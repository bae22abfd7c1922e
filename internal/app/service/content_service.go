package service

import (
	"context"
	"encoding/json"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/pkg/logger"
)

// ContentService serves the public site: the full menu grouped by
// category, the special menus and the live music schedule. Reads go
// through the content cache when one is configured; mutations on the
// admin side invalidate the keys.
type ContentService interface {
	GetMenu(ctx context.Context) ([]model.Category, error)
	GetSpecialMenus(ctx context.Context) ([]model.SpecialMenu, error)
	GetEvents(ctx context.Context) ([]model.Event, error)
}

type contentService struct {
	categoryRepo    repository.CategoryRepository
	specialMenuRepo repository.SpecialMenuRepository
	eventRepo       repository.EventRepository
	cache           ContentCache
}

func NewContentService(
	categoryRepo repository.CategoryRepository,
	specialMenuRepo repository.SpecialMenuRepository,
	eventRepo repository.EventRepository,
	cache ContentCache,
) ContentService {
	return &contentService{
		categoryRepo:    categoryRepo,
		specialMenuRepo: specialMenuRepo,
		eventRepo:       eventRepo,
		cache:           cache,
	}
}

func (s *contentService) GetMenu(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if cacheHit(ctx, s.cache, cacheKeyMenu, &categories) {
		return categories, nil
	}

	categories, err := s.categoryRepo.FindAllWithItems()
	if err != nil {
		return nil, err
	}

	cachePut(ctx, s.cache, cacheKeyMenu, categories)
	return categories, nil
}

func (s *contentService) GetSpecialMenus(ctx context.Context) ([]model.SpecialMenu, error) {
	var menus []model.SpecialMenu
	if cacheHit(ctx, s.cache, cacheKeySpecialMenus, &menus) {
		return menus, nil
	}

	menus, err := s.specialMenuRepo.FindAll()
	if err != nil {
		return nil, err
	}

	cachePut(ctx, s.cache, cacheKeySpecialMenus, menus)
	return menus, nil
}

func (s *contentService) GetEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if cacheHit(ctx, s.cache, cacheKeyEvents, &events) {
		return events, nil
	}

	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, err
	}

	cachePut(ctx, s.cache, cacheKeyEvents, events)
	return events, nil
}

// cacheHit unmarshals a cached response into dest. Any cache or decode
// trouble is treated as a miss.
func cacheHit(ctx context.Context, cache ContentCache, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}

	data, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Content cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("Dropping malformed content cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return true
}

func cachePut(ctx context.Context, cache ContentCache, key string, value interface{}) {
	if cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, data, contentCacheTTL); err != nil {
		logger.Warn("Content cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
