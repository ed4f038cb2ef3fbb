package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PilotSeniority string

const (
	PilotSenior  PilotSeniority = "senior"
	PilotJunior  PilotSeniority = "junior"
	PilotTrainee PilotSeniority = "trainee"
)

// pilots
type Pilot struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`

	Age         int    `gorm:"not null;default:0"`
	Nationality string `gorm:"type:varchar(100)"`

	Seniority PilotSeniority `gorm:"type:varchar(16);not null;index"`

	// Пилот допущен максимум к одному типу самолёта; nil значит без ограничения.
	VehicleRestrictionID *uuid.UUID `gorm:"type:varchar(36);index"`
	MaxRangeKm           int        `gorm:"not null;default:0"`

	VehicleRestriction *PlaneType `gorm:"foreignKey:VehicleRestrictionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (p *Pilot) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

func (p Pilot) FullName() string { return p.FirstName + " " + p.LastName }

type CabinRole string

const (
	CabinRoleChief   CabinRole = "chief"
	CabinRoleRegular CabinRole = "regular"
	CabinRoleChef    CabinRole = "chef"
)

type CabinSeniority string

const (
	CabinSenior CabinSeniority = "senior"
	CabinJunior CabinSeniority = "junior"
)

// cabin_crews
type CabinCrew struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`

	Age         int    `gorm:"not null;default:0"`
	Nationality string `gorm:"type:varchar(100)"`

	Role      CabinRole      `gorm:"type:varchar(16);not null;index"`
	Seniority CabinSeniority `gorm:"type:varchar(16);not null;index"`

	// Типы самолётов, на которых член экипажа может работать.
	PlaneTypes []PlaneType `gorm:"many2many:cabin_crew_plane_types;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (c *CabinCrew) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (c CabinCrew) FullName() string { return c.FirstName + " " + c.LastName }

// QualifiedFor сообщает, допущен ли член экипажа к типу самолёта.
func (c CabinCrew) QualifiedFor(planeTypeID uuid.UUID) bool {
	for _, pt := range c.PlaneTypes {
		if pt.ID == planeTypeID {
			return true
		}
	}
	return false
}
