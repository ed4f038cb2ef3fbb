package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
)

type RosterRepository interface {
	// Создать ростер вместе с назначениями экипажа и пассажиров.
	Create(ctx context.Context, roster *model.Roster) error
	// Ростер со всеми дочерними записями и рейсом.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Roster, error)
	// Ростеры рейса, новые первыми. uuid.Nil — все рейсы.
	ListByFlight(ctx context.Context, flightID uuid.UUID, limit, offset int) ([]model.Roster, int64, error)
	// Транзакционная блокировка генерации для рейса. false — блокировку держит другой.
	TryLockFlight(ctx context.Context, flightID uuid.UUID) (bool, error)
}

type GormRosterRepository struct {
	db *gorm.DB
}

func NewGormRosterRepository(db *gorm.DB) *GormRosterRepository {
	return &GormRosterRepository{db: db}
}

// Create рассчитан на вызов внутри транзакции: при ошибке на любом шаге
// откатывается всё, частичного ростера не бывает.
func (r *GormRosterRepository) Create(ctx context.Context, roster *model.Roster) error {
	db := r.db.WithContext(ctx)

	crew := roster.CrewAssignments
	pax := roster.PassengerAssignments

	if err := db.Omit("CrewAssignments", "PassengerAssignments", "Flight", "CreatedBy").Create(roster).Error; err != nil {
		return fmt.Errorf("insert roster: %w", err)
	}

	for i := range crew {
		crew[i].RosterID = roster.ID
		crew[i].Position = i
	}
	for i := range pax {
		pax[i].RosterID = roster.ID
		pax[i].Position = i
		pax[i].Passenger = nil
	}

	if len(crew) > 0 {
		if err := db.CreateInBatches(&crew, 100).Error; err != nil {
			return fmt.Errorf("insert crew assignments: %w", err)
		}
	}
	if len(pax) > 0 {
		if err := db.CreateInBatches(&pax, 100).Error; err != nil {
			return fmt.Errorf("insert passenger assignments: %w", err)
		}
	}

	roster.CrewAssignments = crew
	roster.PassengerAssignments = pax
	return nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *GormRosterRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Roster, error) {
	var roster model.Roster
	err := r.db.WithContext(ctx).
		Preload("Flight.PlaneType").
		Preload("Flight.OriginAirport").
		Preload("Flight.DestinationAirport").
		Preload("CrewAssignments", byPosition).
		Preload("PassengerAssignments", byPosition).
		Preload("PassengerAssignments.Passenger").
		First(&roster, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

func (r *GormRosterRepository) ListByFlight(
	ctx context.Context,
	flightID uuid.UUID,
	limit, offset int,
) ([]model.Roster, int64, error) {
	var (
		rosters []model.Roster
		total   int64
	)

	q := r.db.WithContext(ctx).Model(&model.Roster{})
	if flightID != uuid.Nil {
		q = q.Where("flight_id = ?", flightID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Preload("Flight").Order("created_at DESC").Find(&rosters).Error; err != nil {
		return nil, 0, err
	}

	return rosters, total, nil
}

// TryLockFlight на Postgres берёт advisory-блокировку до конца транзакции.
// Остальные диалекты полагаются на roster.Locker.
func (r *GormRosterRepository) TryLockFlight(ctx context.Context, flightID uuid.UUID) (bool, error) {
	if r.db.Dialector.Name() != "postgres" {
		return true, nil
	}
	var locked bool
	err := r.db.WithContext(ctx).
		Raw("SELECT pg_try_advisory_xact_lock(hashtext(?))", "roster:"+flightID.String()).
		Scan(&locked).Error
	if err != nil {
		return false, err
	}
	return locked, nil
}
