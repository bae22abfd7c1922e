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

var ErrEventNotFound = errors.New("event not found")

type EventService interface {
	ListEvents() ([]model.Event, error)
	CreateEvent(ctx context.Context, input EventInput, image *ImageUpload) (*model.Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput, image *ImageUpload) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type eventService struct {
	eventRepo repository.EventRepository
	images    ImageStore
	cache     ContentCache
}

func NewEventService(eventRepo repository.EventRepository, images ImageStore, cache ContentCache) EventService {
	return &eventService{
		eventRepo: eventRepo,
		images:    images,
		cache:     cache,
	}
}

func (s *eventService) ListEvents() ([]model.Event, error) {
	return s.eventRepo.FindAll()
}

func (s *eventService) CreateEvent(ctx context.Context, input EventInput, image *ImageUpload) (*model.Event, error) {
	if errs := mergeFieldErrors(validateEventInput(input), validateImageFile(image)); errs != nil {
		return nil, errs
	}

	imageURL, err := resolveImageURL(ctx, s.images, image, input.ImageURL, storage.PrefixEvent)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, FieldErrors{"image_url": "an image is required"}
	}

	event := &model.Event{
		ArtistName:  input.ArtistName,
		Description: input.Description,
		ImageURL:    imageURL,
		Date:        input.Date,
		IsActive:    input.IsActive,
	}

	if err := s.eventRepo.Create(event); err != nil {
		logger.Error("Failed to create event", err, map[string]interface{}{
			"artist_name": input.ArtistName,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeyEvents)

	logger.Info("Event created", map[string]interface{}{
		"event_id":    event.ID,
		"artist_name": event.ArtistName,
	})
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, input EventInput, image *ImageUpload) (*model.Event, error) {
	if errs := mergeFieldErrors(validateEventInput(input), validateImageFile(image)); errs != nil {
		return nil, errs
	}

	imageURL, err := resolveImageURL(ctx, s.images, image, input.ImageURL, storage.PrefixEvent)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, FieldErrors{"image_url": "an image is required"}
	}

	event := &model.Event{
		ID:          id,
		ArtistName:  input.ArtistName,
		Description: input.Description,
		ImageURL:    imageURL,
		Date:        input.Date,
		IsActive:    input.IsActive,
	}

	if err := s.eventRepo.Update(event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: event not found", map[string]interface{}{
				"event_id": id,
			})
			return nil, ErrEventNotFound
		}
		logger.Error("Failed to update event", err, map[string]interface{}{
			"event_id": id,
		})
		return nil, err
	}

	invalidateContent(ctx, s.cache, cacheKeyEvents)

	logger.Info("Event updated", map[string]interface{}{
		"event_id":    id,
		"artist_name": input.ArtistName,
	})
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}

	if err := s.eventRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		logger.Error("Failed to delete event", err, map[string]interface{}{
			"event_id": id,
		})
		return err
	}

	invalidateContent(ctx, s.cache, cacheKeyEvents)

	if err := cleanupImage(ctx, s.images, event.ImageURL, "event", id); err != nil {
		return err
	}

	logger.Info("Event deleted", map[string]interface{}{
		"event_id": id,
	})
	return nil
}
