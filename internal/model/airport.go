package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// airports
type Airport struct {
	ID      uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Code    string    `gorm:"type:varchar(8);not null;uniqueIndex"`
	Name    string    `gorm:"type:varchar(255);not null"`
	City    string    `gorm:"type:varchar(255)"`
	Country string    `gorm:"type:varchar(255)"`
}

func (a *Airport) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
