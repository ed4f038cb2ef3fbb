package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
)

type PilotRepository interface {
	// Пилоты по списку id (ручной выбор).
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Pilot, error)
	// Пилоты, допущенные к типу самолёта и с достаточной дальностью.
	ListQualified(ctx context.Context, planeTypeID uuid.UUID, distanceKm int) ([]model.Pilot, error)
}

type GormPilotRepository struct {
	db *gorm.DB
}

func NewGormPilotRepository(db *gorm.DB) *GormPilotRepository {
	return &GormPilotRepository{db: db}
}

func (r *GormPilotRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Pilot, error) {
	if len(ids) == 0 {
		return []model.Pilot{}, nil
	}
	var pilots []model.Pilot
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("seniority ASC, code ASC").
		Find(&pilots).Error
	if err != nil {
		return nil, err
	}
	return pilots, nil
}

func (r *GormPilotRepository) ListQualified(ctx context.Context, planeTypeID uuid.UUID, distanceKm int) ([]model.Pilot, error) {
	var pilots []model.Pilot
	err := r.db.WithContext(ctx).
		Where("vehicle_restriction_id IS NULL OR vehicle_restriction_id = ?", planeTypeID).
		Where("max_range_km >= ?", distanceKm).
		Order("seniority ASC, code ASC").
		Find(&pilots).Error
	if err != nil {
		return nil, err
	}
	return pilots, nil
}
