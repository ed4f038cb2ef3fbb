package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей ростерного ядра.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Airport{},
		&PlaneType{},
		&Flight{},
		&Pilot{},
		&CabinCrew{},
		&Passenger{},
		&PassengerLink{},
		&Ticket{},
		&Roster{},
		&RosterCrewAssignment{},
		&RosterPassengerAssignment{},
	)
}
