package repository

import (
	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *model.Event) error
	FindAll() ([]model.Event, error)
	FindByID(id string) (*model.Event, error)
	Update(event *model.Event) error
	Delete(id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.Event) error {
	logger.Debug("Creating event in database", map[string]interface{}{
		"artist_name": event.ArtistName,
	})

	if err := r.db.Create(event).Error; err != nil {
		logger.Error("Failed to create event in database", err, map[string]interface{}{
			"artist_name": event.ArtistName,
		})
		return err
	}

	logger.Debug("Event created in database", map[string]interface{}{
		"event_id":    event.ID,
		"artist_name": event.ArtistName,
	})
	return nil
}

func (r *eventRepository) FindAll() ([]model.Event, error) {
	var events []model.Event
	err := r.db.Order("created_at ASC").Find(&events).Error
	if err != nil {
		logger.Error("Failed to find events", err)
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(id string) (*model.Event, error) {
	var event model.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		logger.Error("Failed to find event by ID", err, map[string]interface{}{
			"event_id": id,
		})
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(event *model.Event) error {
	logger.Debug("Updating event in database", map[string]interface{}{
		"event_id":    event.ID,
		"artist_name": event.ArtistName,
	})

	result := r.db.Model(&model.Event{}).
		Where("id = ?", event.ID).
		Select("artist_name", "description", "image_url", "date", "is_active").
		Updates(event)
	if result.Error != nil {
		logger.Error("Failed to update event in database", result.Error, map[string]interface{}{
			"event_id": event.ID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepository) Delete(id string) error {
	logger.Debug("Deleting event from database", map[string]interface{}{
		"event_id": id,
	})

	result := r.db.Delete(&model.Event{}, "id = ?", id)
	if result.Error != nil {
		logger.Error("Failed to delete event from database", result.Error, map[string]interface{}{
			"event_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
