package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/app/service"
	apperrors "github.com/misircafe/misircafe-backend/internal/errors"
	"github.com/misircafe/misircafe-backend/internal/middleware"
)

type EventController struct {
	eventService service.EventService
}

func NewEventController(eventService service.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// eventInputFromForm parses the multipart event form. The weekly
// schedule arrives as a JSON array in the "date" field, e.g.
// [{"day":4,"clock":"21:00"}].
func eventInputFromForm(c *gin.Context) (service.EventInput, error) {
	input := service.EventInput{
		ArtistName:  c.PostForm("artist_name"),
		Description: c.PostForm("description"),
		ImageURL:    c.PostForm("image_url"),
		IsActive:    c.PostForm("is_active") != "false",
	}

	if raw := c.PostForm("date"); raw != "" {
		var dates model.EventDates
		if err := json.Unmarshal([]byte(raw), &dates); err != nil {
			return input, err
		}
		input.Date = dates
	}
	return input, nil
}

// GetEvents returns all events.
// GET /api/v1/admin/events
func (ctrl *EventController) GetEvents(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	events, err := ctrl.eventService.ListEvents()
	if err != nil {
		log.Error("Failed to fetch events", err, nil)
		apperrors.InternalError(c, "Failed to fetch events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// CreateEvent creates an event from a multipart form.
// POST /api/v1/admin/events
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	input, err := eventInputFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "The schedule must be a JSON array of day/clock entries")
		return
	}

	image, closeImage, err := imageFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The uploaded file could not be read")
		return
	}
	defer closeImage()

	event, err := ctrl.eventService.CreateEvent(c.Request.Context(), input, image)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "The image could not be uploaded, please try again")
			return
		}
		log.Error("Failed to create event", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "event")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"event": event,
	})
}

// UpdateEvent updates an event from a multipart form.
// PUT /api/v1/admin/events/:id
func (ctrl *EventController) UpdateEvent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	input, err := eventInputFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "The schedule must be a JSON array of day/clock entries")
		return
	}

	image, closeImage, err := imageFromForm(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "The uploaded file could not be read")
		return
	}
	defer closeImage()

	event, err := ctrl.eventService.UpdateEvent(c.Request.Context(), id, input, image)
	if err != nil {
		if respondFieldErrors(c, err) {
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			apperrors.NotFound(c, apperrors.EventNotFound, "Event not found")
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.UploadFailed, "The image could not be uploaded, please try again")
			return
		}
		log.Error("Failed to update event", err, map[string]interface{}{
			"event_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event": event,
	})
}

// DeleteEvent removes an event and then its image.
// DELETE /api/v1/admin/events/:id
func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	err := ctrl.eventService.DeleteEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			apperrors.NotFound(c, apperrors.EventNotFound, "Event not found")
			return
		}
		if errors.Is(err, service.ErrImageCleanupFailed) {
			log.Warn("Event deleted but image cleanup failed", map[string]interface{}{
				"event_id": id,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.StorageDeleteFailed, "The event was removed but its image could not be cleaned up")
			return
		}
		log.Error("Failed to delete event", err, map[string]interface{}{
			"event_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "event")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted",
	})
}
