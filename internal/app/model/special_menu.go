package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpecialMenu is a standalone promoted item (e.g. a set menu) shown on
// the home page, independent of the category tree.
type SpecialMenu struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     string    `gorm:"not null" json:"price"`
	ImageURL  string    `json:"image_url"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SpecialMenu) TableName() string {
	return "special_menus"
}

func (s *SpecialMenu) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
