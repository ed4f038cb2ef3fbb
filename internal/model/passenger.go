package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InfantMaxAge — пассажиры этого возраста и младше летят без отдельного места.
const InfantMaxAge = 2

// passengers
type Passenger struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`

	Email          string `gorm:"type:varchar(255)"`
	Phone          string `gorm:"type:varchar(32)"`
	PassportNumber string `gorm:"type:varchar(50);index"`
	Nationality    string `gorm:"type:varchar(100)"`

	Age      int    `gorm:"not null;default:0"`
	SeatType string `gorm:"type:varchar(16);not null;default:'economy'"`

	// Для младенцев обязателен родитель.
	ParentID *uuid.UUID `gorm:"type:varchar(36);index"`

	CreatedAt time.Time `gorm:"not null"`
}

func (p *Passenger) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

func (p Passenger) IsInfant() bool { return p.Age <= InfantMaxAge }

func (p Passenger) FullName() string { return p.FirstName + " " + p.LastName }

// passenger_links — связи «пассажир → попутчик» (1–2 на пассажира).
// Храним явной таблицей пар id, граф собирается по индексам при группировке.
type PassengerLink struct {
	PassengerID uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	AffiliateID uuid.UUID `gorm:"type:varchar(36);primaryKey;index"`

	// Порядок, в котором пассажир указывал попутчиков.
	CreatedAt time.Time `gorm:"not null"`

	Passenger *Passenger `gorm:"foreignKey:PassengerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Affiliate *Passenger `gorm:"foreignKey:AffiliateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type TicketStatus string

const (
	TicketStatusBooked    TicketStatus = "booked"
	TicketStatusCheckedIn TicketStatus = "checked_in"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusCompleted TicketStatus = "completed"
)

// tickets
type Ticket struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	TicketNumber string    `gorm:"type:varchar(50);not null;uniqueIndex"`

	FlightID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	PassengerID uuid.UUID `gorm:"type:varchar(36);not null;index"`

	TicketClass string       `gorm:"type:varchar(20);not null;default:'Economy'"`
	SeatNumber  *string      `gorm:"type:varchar(10)"`
	Status      TicketStatus `gorm:"type:varchar(20);not null;default:'booked';index"`

	CreatedAt time.Time `gorm:"not null"`

	Flight    *Flight    `gorm:"foreignKey:FlightID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Passenger *Passenger `gorm:"foreignKey:PassengerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (t *Ticket) BeforeCreate(*gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// IsBusiness: классы "Business*" летят в бизнесе, всё остальное — в экономе.
func (t Ticket) IsBusiness() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(t.TicketClass)), "bus")
}

// PinnedSeat возвращает место, закреплённое за билетом, или "".
func (t Ticket) PinnedSeat() string {
	if t.SeatNumber == nil {
		return ""
	}
	return strings.TrimSpace(*t.SeatNumber)
}
