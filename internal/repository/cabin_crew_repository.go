package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
)

type CabinCrewRepository interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CabinCrew, error)
	ListQualified(ctx context.Context, planeTypeID uuid.UUID) ([]model.CabinCrew, error)
}

type GormCabinCrewRepository struct {
	db *gorm.DB
}

func NewGormCabinCrewRepository(db *gorm.DB) *GormCabinCrewRepository {
	return &GormCabinCrewRepository{db: db}
}

// ListByIDs подгружает допуски, чтобы вызывающий мог их проверить.
func (r *GormCabinCrewRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CabinCrew, error) {
	if len(ids) == 0 {
		return []model.CabinCrew{}, nil
	}
	var crew []model.CabinCrew
	err := r.db.WithContext(ctx).
		Preload("PlaneTypes").
		Where("id IN ?", ids).
		Order("role ASC, seniority ASC, code ASC").
		Find(&crew).Error
	if err != nil {
		return nil, err
	}
	return crew, nil
}

func (r *GormCabinCrewRepository) ListQualified(ctx context.Context, planeTypeID uuid.UUID) ([]model.CabinCrew, error) {
	var crew []model.CabinCrew
	err := r.db.WithContext(ctx).
		Preload("PlaneTypes").
		Joins("JOIN cabin_crew_plane_types ON cabin_crew_plane_types.cabin_crew_id = cabin_crews.id").
		Where("cabin_crew_plane_types.plane_type_id = ?", planeTypeID).
		Order("cabin_crews.role ASC, cabin_crews.seniority ASC, cabin_crews.code ASC").
		Find(&crew).Error
	if err != nil {
		return nil, err
	}
	return crew, nil
}
