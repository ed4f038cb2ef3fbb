package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeatLayout: явная схема салона: упорядоченные метки мест по классам.
type SeatLayout struct {
	Business []string `json:"business"`
	Economy  []string `json:"economy"`
}

// plane_types
type PlaneType struct {
	ID   uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Code string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(255);not null"`

	TotalSeats    int `gorm:"not null;default:0"`
	BusinessSeats int `gorm:"not null;default:0"`
	EconomySeats  int `gorm:"not null;default:0"`

	// Может отсутствовать, тогда пулы мест синтезируются по количеству.
	SeatLayout datatypes.JSONType[SeatLayout]

	MinCabinCrew int `gorm:"not null;default:4"`
	MaxCabinCrew int `gorm:"not null;default:10"`
}

func (p *PlaneType) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
