package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusLanded    FlightStatus = "landed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// flights
type Flight struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	FlightNumber string    `gorm:"type:varchar(16);not null;uniqueIndex"`

	OriginAirportID      *uuid.UUID `gorm:"type:varchar(36);index"`
	DestinationAirportID *uuid.UUID `gorm:"type:varchar(36);index"`

	DepartureTime   time.Time `gorm:"not null"`
	ArrivalTime     time.Time `gorm:"not null"`
	DurationMinutes int       `gorm:"not null;default:0"`

	// Без дистанции и типа самолёта ростер не строится.
	DistanceKm  *int       `gorm:"type:integer"`
	PlaneTypeID *uuid.UUID `gorm:"type:varchar(36);index"`

	Status FlightStatus `gorm:"type:varchar(32);not null;default:'scheduled'"`

	OriginAirport      *Airport   `gorm:"foreignKey:OriginAirportID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	DestinationAirport *Airport   `gorm:"foreignKey:DestinationAirportID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	PlaneType          *PlaneType `gorm:"foreignKey:PlaneTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (f *Flight) BeforeCreate(*gorm.DB) error {
	ensureID(&f.ID)
	return nil
}
