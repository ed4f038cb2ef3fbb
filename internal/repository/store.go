package repository

import "gorm.io/gorm"

// Store собирает репозитории поверх одного *gorm.DB — обычно транзакции,
// чтобы все чтения и записи генерации шли через неё.
type Store struct {
	Flights   FlightRepository
	Pilots    PilotRepository
	CabinCrew CabinCrewRepository
	Tickets   TicketRepository
	Rosters   RosterRepository
	Users     UserRepository
}

func NewStore(db *gorm.DB) Store {
	return Store{
		Flights:   NewGormFlightRepository(db),
		Pilots:    NewGormPilotRepository(db),
		CabinCrew: NewGormCabinCrewRepository(db),
		Tickets:   NewGormTicketRepository(db),
		Rosters:   NewGormRosterRepository(db),
		Users:     NewGormUserRepository(db),
	}
}
