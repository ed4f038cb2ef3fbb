package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// users — операторы, запускающие генерацию ростеров.
type User struct {
	ID uuid.UUID `gorm:"type:varchar(36);primaryKey"`

	Username    string `gorm:"type:varchar(150);not null;uniqueIndex"`
	DisplayName string `gorm:"type:varchar(255)"`
	IsStaff     bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
