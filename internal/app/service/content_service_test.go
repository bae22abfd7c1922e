package service

import (
	"context"
	"testing"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContentServiceTest(t *testing.T) (ContentService, *fakeContentCache, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cache := newFakeContentCache()
	svc := NewContentService(
		repository.NewCategoryRepository(testDB),
		repository.NewSpecialMenuRepository(testDB),
		repository.NewEventRepository(testDB),
		cache,
	)
	return svc, cache, testDB
}

func TestContentService_GetMenu_GroupsItemsByCategory(t *testing.T) {
	svc, _, testDB := setupContentServiceTest(t)

	first := &model.Category{Title: "Starters", Description: "d", ImageURL: "u", SortOrder: 1}
	second := &model.Category{Title: "Mains", Description: "d", ImageURL: "u", SortOrder: 2}
	require.NoError(t, testDB.Create(first).Error)
	require.NoError(t, testDB.Create(second).Error)
	require.NoError(t, testDB.Create(&model.MenuItem{
		Name: "Haydari", Price: "120 TL", CategoryID: first.ID, IsActive: true,
	}).Error)

	menu, err := svc.GetMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "Starters", menu[0].Title)
	require.Len(t, menu[0].Items, 1)
	assert.Equal(t, "Haydari", menu[0].Items[0].Name)
	assert.Empty(t, menu[1].Items)
}

func TestContentService_GetMenu_ServesFromCache(t *testing.T) {
	svc, cache, testDB := setupContentServiceTest(t)
	ctx := context.Background()

	category := &model.Category{Title: "Starters", Description: "d", ImageURL: "u"}
	require.NoError(t, testDB.Create(category).Error)

	// first read populates the cache
	menu, err := svc.GetMenu(ctx)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, 1, cache.sets)

	// a direct DB change is invisible until the cache is invalidated
	require.NoError(t, testDB.Delete(&model.Category{}, "id = ?", category.ID).Error)

	menu, err = svc.GetMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, 1)

	require.NoError(t, cache.Del(ctx, cacheKeyMenu))
	menu, err = svc.GetMenu(ctx)
	require.NoError(t, err)
	assert.Empty(t, menu)
}

func TestContentService_GetSpecialMenus(t *testing.T) {
	svc, _, testDB := setupContentServiceTest(t)

	require.NoError(t, testDB.Create(&model.SpecialMenu{
		Name: "Breakfast for Two", Price: "950 TL", ImageURL: "u", IsActive: true,
	}).Error)

	menus, err := svc.GetSpecialMenus(context.Background())
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Breakfast for Two", menus[0].Name)
}

func TestContentService_GetEvents(t *testing.T) {
	svc, _, testDB := setupContentServiceTest(t)

	require.NoError(t, testDB.Create(&model.Event{
		ArtistName: "Duman",
		ImageURL:   "u",
		Date:       model.EventDates{{Day: 4, Clock: "21:00"}},
		IsActive:   true,
	}).Error)

	events, err := svc.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Len(t, events[0].Date, 1)
	assert.Equal(t, "21:00", events[0].Date[0].Clock)
}

func TestContentService_MalformedCacheEntryFallsThrough(t *testing.T) {
	svc, cache, testDB := setupContentServiceTest(t)
	ctx := context.Background()

	require.NoError(t, testDB.Create(&model.SpecialMenu{
		Name: "Breakfast for Two", Price: "950 TL", ImageURL: "u", IsActive: true,
	}).Error)
	cache.entries[cacheKeySpecialMenus] = []byte("{not json")

	menus, err := svc.GetSpecialMenus(ctx)
	require.NoError(t, err)
	assert.Len(t, menus, 1)
}

func TestContentService_NilCache(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	svc := NewContentService(
		repository.NewCategoryRepository(testDB),
		repository.NewSpecialMenuRepository(testDB),
		repository.NewEventRepository(testDB),
		nil,
	)

	menu, err := svc.GetMenu(context.Background())
	require.NoError(t, err)
	assert.Empty(t, menu)
}
