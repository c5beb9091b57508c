package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodMenu is a navigable menu entry of the stall front-end.
type FoodMenu struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuName    string    `gorm:"type:varchar(255);not null"`
	URL         string    `gorm:"type:text;not null"`
	IsHidden    bool      `gorm:"not null"`
	CreatedDate string    `gorm:"type:varchar(50);not null"`
	RouteName   string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (FoodMenu) TableName() string {
	return "food_menus"
}

func (m *FoodMenu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
