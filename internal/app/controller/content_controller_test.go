package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/repository"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	"github.com/misircafe/misircafe-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContentControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	contentService := service.NewContentService(
		repository.NewCategoryRepository(testDB),
		repository.NewSpecialMenuRepository(testDB),
		repository.NewEventRepository(testDB),
		nil,
	)
	contentController := NewContentController(contentService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/menu", contentController.GetMenu)
	router.GET("/special-menus", contentController.GetSpecialMenus)
	router.GET("/events", contentController.GetEvents)

	return router, testDB
}

func TestContentController_GetMenu(t *testing.T) {
	router, testDB := setupContentControllerTest(t)

	category := &model.Category{Title: "Starters", Description: "d", ImageURL: "u", SortOrder: 1}
	require.NoError(t, testDB.Create(category).Error)
	require.NoError(t, testDB.Create(&model.MenuItem{
		Name: "Haydari", Price: "120 TL", CategoryID: category.ID, IsActive: true,
	}).Error)

	req := httptest.NewRequest("GET", "/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Menu []model.Category `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Menu, 1)
	require.Len(t, resp.Menu[0].Items, 1)
	assert.Equal(t, "Haydari", resp.Menu[0].Items[0].Name)
}

func TestContentController_GetSpecialMenus(t *testing.T) {
	router, testDB := setupContentControllerTest(t)

	require.NoError(t, testDB.Create(&model.SpecialMenu{
		Name: "Breakfast for Two", Price: "950 TL", ImageURL: "u", IsActive: true,
	}).Error)

	req := httptest.NewRequest("GET", "/special-menus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Breakfast for Two")
}

func TestContentController_GetEvents(t *testing.T) {
	router, testDB := setupContentControllerTest(t)

	require.NoError(t, testDB.Create(&model.Event{
		ArtistName: "Duman",
		ImageURL:   "u",
		Date:       model.EventDates{{Day: 4, Clock: "21:00"}},
		IsActive:   true,
	}).Error)

	req := httptest.NewRequest("GET", "/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []model.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	require.Len(t, resp.Events[0].Date, 1)
	assert.Equal(t, "21:00", resp.Events[0].Date[0].Clock)
}
