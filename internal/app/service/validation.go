package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/misircafe/misircafe-backend/internal/app/model"
	"github.com/misircafe/misircafe-backend/internal/storage"
)

// FieldErrors maps form field names to messages. It is returned before
// any collaborator call is made; the admin form keys its inline errors
// off the field names.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

const (
	maxTitleLength       = 100
	maxNameLength        = 100
	maxPriceLength       = 50
	maxDescriptionLength = 1000
)

// 24-hour HH:MM
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CategoryInput carries the mutable category fields from the admin
// form. ImageURL is a manually supplied URL; an uploaded file, when
// present, takes precedence over it.
type CategoryInput struct {
	Title       string
	Description string
	ImageURL    string
}

type MenuItemInput struct {
	Name        string
	Description string
	Price       string
	IsPopular   bool
	IsActive    bool
	CategoryID  string
}

type SpecialMenuInput struct {
	Name     string
	Price    string
	ImageURL string
	IsActive bool
}

type EventInput struct {
	ArtistName  string
	Description string
	ImageURL    string
	Date        model.EventDates
	IsActive    bool
}

func validateCategoryInput(input CategoryInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Title) == "" {
		errs["title"] = "title is required"
	} else if len(input.Title) > maxTitleLength {
		errs["title"] = fmt.Sprintf("title must be at most %d characters", maxTitleLength)
	}

	if strings.TrimSpace(input.Description) == "" {
		errs["description"] = "description is required"
	} else if len(input.Description) > maxDescriptionLength {
		errs["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLength)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateMenuItemInput(input MenuItemInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	} else if len(input.Name) > maxNameLength {
		errs["name"] = fmt.Sprintf("name must be at most %d characters", maxNameLength)
	}

	if strings.TrimSpace(input.Price) == "" {
		errs["price"] = "price is required"
	} else if len(input.Price) > maxPriceLength {
		errs["price"] = fmt.Sprintf("price must be at most %d characters", maxPriceLength)
	}

	if len(input.Description) > maxDescriptionLength {
		errs["description"] = fmt.Sprintf("description must be at most %d characters", maxDescriptionLength)
	}

	if strings.TrimSpace(input.CategoryID) == "" {
		errs["category_id"] = "category is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateSpecialMenuInput(input SpecialMenuInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	} else if len(input.Name) > maxNameLength {
		errs["name"] = fmt.Sprintf("name must be at most %d characters", maxNameLength)
	}

	if strings.TrimSpace(input.Price) == "" {
		errs["price"] = "price is required"
	} else if len(input.Price) > maxPriceLength {
		errs["price"] = fmt.Sprintf("price must be at most %d characters", maxPriceLength)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateEventInput(input EventInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(input.ArtistName) == "" {
		errs["artist_name"] = "artist name is required"
	} else if len(input.ArtistName) > maxNameLength {
		errs["artist_name"] = fmt.Sprintf("artist name must be at most %d characters", maxNameLength)
	}

	if len(input.Date) == 0 {
		errs["date"] = "at least one schedule entry is required"
	}
	for i, entry := range input.Date {
		if entry.Day < 0 || entry.Day > 6 {
			errs[fmt.Sprintf("date.%d.day", i)] = "day must be between 0 (Monday) and 6 (Sunday)"
		}
		if !clockPattern.MatchString(entry.Clock) {
			errs[fmt.Sprintf("date.%d.clock", i)] = "time must be in 24-hour HH:MM format"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateImageFile enforces the local upload limits: at most 5MB and
// an image MIME type. Runs before any network call.
func validateImageFile(image *ImageUpload) FieldErrors {
	if image == nil {
		return nil
	}

	errs := FieldErrors{}
	if image.Size > storage.MaxImageSize {
		errs["image"] = fmt.Sprintf("image must be at most %d MB", storage.MaxImageSize/(1024*1024))
	}

	allowed := false
	for _, t := range storage.AllowedImageTypes {
		if image.ContentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		errs["image"] = "only JPEG, PNG, GIF and WEBP images are allowed"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
