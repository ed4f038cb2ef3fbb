package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
	"github.com/Leganyst/flight-roster/internal/repository"
)

// FlightContext — всё, что нужно остальным стадиям о рейсе.
type FlightContext struct {
	Flight     model.Flight
	Plane      model.PlaneType
	DistanceKm int
}

// LoadFlight загружает рейс и проверяет, что у него задан тип самолёта и дистанция.
func LoadFlight(ctx context.Context, flights repository.FlightRepository, id uuid.UUID) (*FlightContext, error) {
	f, err := flights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("flight %s not found", id)
		}
		return nil, fmt.Errorf("load flight: %w", err)
	}
	if f.PlaneType == nil || f.PlaneTypeID == nil {
		return nil, violation("flight %s has no plane type assigned", f.FlightNumber)
	}
	if f.DistanceKm == nil {
		return nil, violation("flight %s has no distance set", f.FlightNumber)
	}
	return &FlightContext{
		Flight:     *f,
		Plane:      *f.PlaneType,
		DistanceKm: *f.DistanceKm,
	}, nil
}
