package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem belongs to exactly one Category. Price is a display string
// ("120", "80 ₺"), not a numeric amount: some items carry currency
// text and some have no price at all in the source content.
type MenuItem struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       string    `gorm:"not null" json:"price"`
	IsPopular   bool      `gorm:"default:false" json:"is_popular"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CategoryID  string    `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
