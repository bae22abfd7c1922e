package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventDate is one recurring weekly slot, not a calendar date.
// Day is 0-6 with Monday = 0; Clock is 24-hour "HH:MM".
type EventDate struct {
	Day   int    `json:"day"`
	Clock string `json:"clock"`
}

// EventDates is stored as a JSON array column.
type EventDates []EventDate

func (d EventDates) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *EventDates) Scan(value interface{}) error {
	if value == nil {
		*d = EventDates{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type %T for EventDates", value)
	}
}

// Event is a recurring live-music act. Description holds sanitized
// rich-text HTML from the admin editor.
type Event struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	ArtistName  string     `gorm:"not null" json:"artist_name"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `json:"image_url"`
	Date        EventDates `gorm:"type:json" json:"date"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
