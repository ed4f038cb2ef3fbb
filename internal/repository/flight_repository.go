package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
)

type FlightRepository interface {
	// Рейс вместе с типом самолёта и аэропортами маршрута.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Flight, error)
}

type GormFlightRepository struct {
	db *gorm.DB
}

func NewGormFlightRepository(db *gorm.DB) *GormFlightRepository {
	return &GormFlightRepository{db: db}
}

func (r *GormFlightRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Flight, error) {
	var f model.Flight
	err := r.db.WithContext(ctx).
		Preload("PlaneType").
		Preload("OriginAirport").
		Preload("DestinationAirport").
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}
