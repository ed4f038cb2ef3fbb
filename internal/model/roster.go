package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Тег бэкенда по умолчанию. На алгоритм не влияет.
const DefaultBackend = "sql"

// RosterPayload — снимок ростера для аудита и экспорта.
type RosterPayload struct {
	Flight         string              `json:"flight"`
	Backend        string              `json:"backend"`
	Crew           []CrewSnapshot      `json:"crew"`
	Passengers     []PassengerSnapshot `json:"passengers"`
	RemainingSeats SeatLayout          `json:"remaining_seats"`
}

type CrewSnapshot struct {
	Type      CrewType `json:"type"`
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Role      string   `json:"role,omitempty"`
	Seniority string   `json:"seniority"`
}

type PassengerSnapshot struct {
	Name     string  `json:"name"`
	Seat     *string `json:"seat"`
	SeatType string  `json:"seat_type"`
	Infant   bool    `json:"infant"`
}

// rosters — неизменяемый результат одного вызова генерации.
type Roster struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	FlightID uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Backend  string    `gorm:"type:varchar(32);not null;default:'sql';index"`

	Payload datatypes.JSONType[RosterPayload]

	CreatedByID *uuid.UUID `gorm:"type:varchar(36);index"`
	CreatedAt   time.Time  `gorm:"not null;index"`

	Flight    *Flight `gorm:"foreignKey:FlightID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CrewAssignments      []RosterCrewAssignment      `gorm:"foreignKey:RosterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PassengerAssignments []RosterPassengerAssignment `gorm:"foreignKey:RosterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (r *Roster) BeforeCreate(*gorm.DB) error {
	ensureID(&r.ID)
	return nil
}

type CrewType string

const (
	CrewTypePilot CrewType = "pilot"
	CrewTypeCabin CrewType = "cabin"
)

// roster_crew_assignments. MemberID ссылается на pilots или cabin_crews
// в зависимости от CrewType; в домене это сумма-тип roster.CrewAssignment.
type RosterCrewAssignment struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	RosterID uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Position int       `gorm:"not null"`

	CrewType     CrewType  `gorm:"type:varchar(16);not null"`
	MemberID     uuid.UUID `gorm:"type:varchar(36);not null;index"`
	AssignedRole string    `gorm:"type:varchar(32);not null"`

	AssignedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (a *RosterCrewAssignment) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// roster_passenger_assignments
type RosterPassengerAssignment struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	RosterID    uuid.UUID `gorm:"type:varchar(36);not null;index"`
	Position    int       `gorm:"not null"`
	PassengerID uuid.UUID `gorm:"type:varchar(36);not null;index"`

	SeatNumber *string `gorm:"type:varchar(10)"`
	SeatType   string  `gorm:"type:varchar(16);not null"`
	IsInfant   bool    `gorm:"not null;default:false"`

	// Место выдано из пула другого класса (бизнес ↔ эконом).
	ClassFallback bool `gorm:"not null;default:false"`

	AssignedAt time.Time `gorm:"not null;autoCreateTime"`

	Passenger *Passenger `gorm:"foreignKey:PassengerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (a *RosterPassengerAssignment) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
