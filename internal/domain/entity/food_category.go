package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodCategory struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryName        string    `gorm:"type:varchar(255);not null"`
	CategoryDescription string    `gorm:"type:text;not null"`
	IsHidden            bool      `gorm:"not null"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (FoodCategory) TableName() string {
	return "food_categories"
}

func (c *FoodCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
