package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a menu section shown on the public menu page.
// SortOrder drives display ordering and is rewritten in bulk by the
// admin drag-reorder.
type Category struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// No FK constraint is created for this association: deleting a
	// category intentionally leaves its items in place.
	Items []MenuItem `gorm:"foreignKey:CategoryID;-:migration" json:"items,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CategoryForMenu is the narrow projection used to populate the
// category dropdown in the menu-item form without dragging image URLs
// along.
type CategoryForMenu struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
