package repository

import (
	"testing"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSpecialMenuTest(t *testing.T) (*gorm.DB, SpecialMenuRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	return testDB, NewSpecialMenuRepository(testDB)
}

func TestSpecialMenuRepository_CreateAndFindAll(t *testing.T) {
	testDB, repo := setupSpecialMenuTest(t)
	defer db.CleanupTestDB(testDB)

	menu := &model.SpecialMenu{
		Name:     "Breakfast for Two",
		Price:    "950 TL",
		ImageURL: "https://cdn.misircafe.com/special_menu/1.jpg",
		IsActive: true,
	}
	require.NoError(t, repo.Create(menu))
	assert.NotEmpty(t, menu.ID)

	menus, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Breakfast for Two", menus[0].Name)
}

func TestSpecialMenuRepository_Update(t *testing.T) {
	testDB, repo := setupSpecialMenuTest(t)
	defer db.CleanupTestDB(testDB)

	menu := &model.SpecialMenu{Name: "Breakfast for Two", Price: "950 TL", ImageURL: "u", IsActive: true}
	require.NoError(t, repo.Create(menu))

	menu.Price = "1100 TL"
	require.NoError(t, repo.Update(menu))

	found, err := repo.FindByID(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "1100 TL", found.Price)

	assert.ErrorIs(t, repo.Update(&model.SpecialMenu{ID: "missing", Name: "Ghost", Price: "0"}), gorm.ErrRecordNotFound)
}

func TestSpecialMenuRepository_Delete(t *testing.T) {
	testDB, repo := setupSpecialMenuTest(t)
	defer db.CleanupTestDB(testDB)

	menu := &model.SpecialMenu{Name: "Breakfast for Two", Price: "950 TL", ImageURL: "u"}
	require.NoError(t, repo.Create(menu))

	require.NoError(t, repo.Delete(menu.ID))
	assert.ErrorIs(t, repo.Delete(menu.ID), gorm.ErrRecordNotFound)
}
