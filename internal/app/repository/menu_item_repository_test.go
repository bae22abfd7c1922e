package repository

import (
	"testing"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMenuItemTest(t *testing.T) (*gorm.DB, MenuItemRepository, *model.Category) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	category := &model.Category{
		Title:       "Mains",
		Description: "Hot dishes",
		ImageURL:    "https://cdn.misircafe.com/category/mains.jpg",
	}
	require.NoError(t, testDB.Create(category).Error)

	return testDB, NewMenuItemRepository(testDB), category
}

func TestMenuItemRepository_Create(t *testing.T) {
	testDB, repo, category := setupMenuItemTest(t)
	defer db.CleanupTestDB(testDB)

	item := &model.MenuItem{
		Name:       "Adana Kebap",
		Price:      "450 TL",
		IsPopular:  true,
		IsActive:   true,
		CategoryID: category.ID,
	}
	require.NoError(t, repo.Create(item))
	assert.NotEmpty(t, item.ID)
}

func TestMenuItemRepository_FindByCategory(t *testing.T) {
	testDB, repo, category := setupMenuItemTest(t)
	defer db.CleanupTestDB(testDB)

	other := &model.Category{Title: "Drinks", Description: "d", ImageURL: "u"}
	require.NoError(t, testDB.Create(other).Error)

	require.NoError(t, repo.Create(&model.MenuItem{Name: "Adana Kebap", Price: "450 TL", CategoryID: category.ID}))
	require.NoError(t, repo.Create(&model.MenuItem{Name: "Ayran", Price: "60 TL", CategoryID: other.ID}))

	items, err := repo.FindByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Adana Kebap", items[0].Name)
}

func TestMenuItemRepository_Update(t *testing.T) {
	testDB, repo, category := setupMenuItemTest(t)
	defer db.CleanupTestDB(testDB)

	item := &model.MenuItem{Name: "Adana Kebap", Price: "450 TL", IsActive: true, CategoryID: category.ID}
	require.NoError(t, repo.Create(item))

	item.Price = "480 TL"
	item.IsActive = false
	require.NoError(t, repo.Update(item))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "480 TL", found.Price)
	assert.False(t, found.IsActive)
}

func TestMenuItemRepository_Update_NotFound(t *testing.T) {
	testDB, repo, category := setupMenuItemTest(t)
	defer db.CleanupTestDB(testDB)

	err := repo.Update(&model.MenuItem{ID: "missing", Name: "Ghost", Price: "0 TL", CategoryID: category.ID})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuItemRepository_Delete(t *testing.T) {
	testDB, repo, category := setupMenuItemTest(t)
	defer db.CleanupTestDB(testDB)

	item := &model.MenuItem{Name: "Adana Kebap", Price: "450 TL", CategoryID: category.ID}
	require.NoError(t, repo.Create(item))

	require.NoError(t, repo.Delete(item.ID))
	assert.ErrorIs(t, repo.Delete(item.ID), gorm.ErrRecordNotFound)
}
