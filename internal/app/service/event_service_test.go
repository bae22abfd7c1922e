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

func setupEventServiceTest(t *testing.T) (EventService, *fakeImageStore, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	images := newFakeImageStore()
	svc := NewEventService(repository.NewEventRepository(testDB), images, newFakeContentCache())
	return svc, images, testDB
}

func TestEventService_CreateEvent(t *testing.T) {
	svc, images, _ := setupEventServiceTest(t)

	event, err := svc.CreateEvent(context.Background(), EventInput{
		ArtistName:  "Mor ve Ötesi",
		Description: "Acoustic night",
		Date: model.EventDates{
			{Day: 4, Clock: "21:00"},
			{Day: 5, Clock: "22:30"},
		},
		IsActive: true,
	}, validImage())
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Len(t, event.Date, 2)
	assert.Equal(t, images.uploads[0], event.ImageURL)
}

func TestEventService_CreateEvent_ScheduleValidation(t *testing.T) {
	svc, _, _ := setupEventServiceTest(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		date  model.EventDates
		field string
	}{
		{"no entries", nil, "date"},
		{"day out of range", model.EventDates{{Day: 7, Clock: "20:00"}}, "date.0.day"},
		{"negative day", model.EventDates{{Day: -1, Clock: "20:00"}}, "date.0.day"},
		{"bad clock", model.EventDates{{Day: 2, Clock: "25:61"}}, "date.0.clock"},
		{"clock without minutes", model.EventDates{{Day: 2, Clock: "20"}}, "date.0.clock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, EventInput{
				ArtistName: "Duman",
				Date:       tt.date,
				IsActive:   true,
			}, validImage())

			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldErrs, tt.field)
		})
	}
}

func TestEventService_UpdateEvent_RoundTripsSchedule(t *testing.T) {
	svc, _, testDB := setupEventServiceTest(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, EventInput{
		ArtistName: "Duman",
		Date:       model.EventDates{{Day: 4, Clock: "21:00"}},
		IsActive:   true,
	}, validImage())
	require.NoError(t, err)

	_, err = svc.UpdateEvent(ctx, event.ID, EventInput{
		ArtistName: "Duman",
		ImageURL:   event.ImageURL,
		Date:       model.EventDates{{Day: 5, Clock: "23:00"}},
		IsActive:   true,
	}, nil)
	require.NoError(t, err)

	var stored model.Event
	require.NoError(t, testDB.First(&stored, "id = ?", event.ID).Error)
	require.Len(t, stored.Date, 1)
	assert.Equal(t, 5, stored.Date[0].Day)
	assert.Equal(t, "23:00", stored.Date[0].Clock)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	svc, _, _ := setupEventServiceTest(t)

	_, err := svc.UpdateEvent(context.Background(), "no-such-id", EventInput{
		ArtistName: "Duman",
		ImageURL:   "https://cdn.misircafe.com/event/1.jpg",
		Date:       model.EventDates{{Day: 0, Clock: "20:00"}},
	}, nil)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_DeleteEvent(t *testing.T) {
	svc, images, testDB := setupEventServiceTest(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, EventInput{
		ArtistName: "Duman",
		Date:       model.EventDates{{Day: 4, Clock: "21:00"}},
		IsActive:   true,
	}, validImage())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))
	assert.Equal(t, []string{event.ImageURL}, images.deletes)

	var count int64
	testDB.Model(&model.Event{}).Count(&count)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, event.ID), ErrEventNotFound)
}
