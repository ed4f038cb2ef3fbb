package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
)

type TicketRepository interface {
	// Неотменённые билеты рейса с пассажирами, в порядке бронирования.
	ListBookedByFlight(ctx context.Context, flightID uuid.UUID) ([]model.Ticket, error)
	// Связи попутчиков для набора пассажиров, в порядке добавления.
	ListLinks(ctx context.Context, passengerIDs []uuid.UUID) ([]model.PassengerLink, error)
}

type GormTicketRepository struct {
	db *gorm.DB
}

func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

func (r *GormTicketRepository) ListBookedByFlight(ctx context.Context, flightID uuid.UUID) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := r.db.WithContext(ctx).
		Preload("Passenger").
		Where("flight_id = ?", flightID).
		Where("status <> ?", model.TicketStatusCancelled).
		Order("created_at ASC, ticket_number ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *GormTicketRepository) ListLinks(ctx context.Context, passengerIDs []uuid.UUID) ([]model.PassengerLink, error) {
	if len(passengerIDs) == 0 {
		return []model.PassengerLink{}, nil
	}
	var links []model.PassengerLink
	err := r.db.WithContext(ctx).
		Where("passenger_id IN ?", passengerIDs).
		Order("passenger_id ASC, created_at ASC, affiliate_id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
