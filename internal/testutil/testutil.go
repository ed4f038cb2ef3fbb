// Package testutil — общие хелперы тестов: in-memory база и типовой рейс.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/flight-roster/internal/model"
)

// OpenDB создаёт отдельную in-memory базу sqlite со схемой и закрывает её по завершении теста.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func MustCreate(t *testing.T, db *gorm.DB, v any) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

// Plane: A320, бизнес 1A,1B,2A,2B и десять мест эконома в рядах 20–23.
func Plane() model.PlaneType {
	return model.PlaneType{
		ID:            uuid.New(),
		Code:          "A320-" + uuid.NewString()[:4],
		Name:          "Airbus A320",
		TotalSeats:    14,
		BusinessSeats: 4,
		EconomySeats:  10,
		SeatLayout: datatypes.NewJSONType(model.SeatLayout{
			Business: []string{"1A", "1B", "2A", "2B"},
			Economy:  []string{"20A", "20B", "20C", "21A", "21B", "21C", "22A", "22B", "22C", "23A"},
		}),
		MinCabinCrew: 4,
		MaxCabinCrew: 10,
	}
}

func Pilot(code string, seniority model.PilotSeniority, rangeKm int) model.Pilot {
	return model.Pilot{
		ID:         uuid.New(),
		Code:       code,
		FirstName:  "Pilot",
		LastName:   code,
		Seniority:  seniority,
		MaxRangeKm: rangeKm,
	}
}

func CabinCrew(code string, role model.CabinRole, seniority model.CabinSeniority, planes ...model.PlaneType) model.CabinCrew {
	return model.CabinCrew{
		ID:         uuid.New(),
		Code:       code,
		FirstName:  "Crew",
		LastName:   code,
		Role:       role,
		Seniority:  seniority,
		PlaneTypes: planes,
	}
}

// Fixture — рейс FA0001 (JFK → LHR, 1200 км) с экипажем, достаточным для генерации:
// пилоты P1 (senior) и P2 (junior), шесть бортпроводников C1–C6.
type Fixture struct {
	Plane  model.PlaneType
	Origin model.Airport
	Dest   model.Airport
	Flight model.Flight
	Pilots []model.Pilot
	Cabin  []model.CabinCrew
}

func SeedFlight(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{
		Plane:  Plane(),
		Origin: model.Airport{Code: "JFK", Name: "John F. Kennedy", City: "New York", Country: "USA"},
		Dest:   model.Airport{Code: "LHR", Name: "Heathrow", City: "London", Country: "UK"},
	}
	MustCreate(t, db, &f.Plane)
	MustCreate(t, db, &f.Origin)
	MustCreate(t, db, &f.Dest)

	distance := 1200
	dep := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	f.Flight = model.Flight{
		FlightNumber:         "FA0001",
		OriginAirportID:      &f.Origin.ID,
		DestinationAirportID: &f.Dest.ID,
		DepartureTime:        dep,
		ArrivalTime:          dep.Add(2 * time.Hour),
		DurationMinutes:      120,
		DistanceKm:           &distance,
		PlaneTypeID:          &f.Plane.ID,
		Status:               model.FlightStatusScheduled,
	}
	MustCreate(t, db, &f.Flight)

	f.Pilots = []model.Pilot{
		Pilot("P1", model.PilotSenior, 5000),
		Pilot("P2", model.PilotJunior, 5000),
	}
	for i := range f.Pilots {
		MustCreate(t, db, &f.Pilots[i])
	}

	f.Cabin = []model.CabinCrew{
		CabinCrew("C1", model.CabinRoleChief, model.CabinSenior, f.Plane),
		CabinCrew("C2", model.CabinRoleRegular, model.CabinJunior, f.Plane),
		CabinCrew("C3", model.CabinRoleRegular, model.CabinJunior, f.Plane),
		CabinCrew("C4", model.CabinRoleRegular, model.CabinJunior, f.Plane),
		CabinCrew("C5", model.CabinRoleRegular, model.CabinJunior, f.Plane),
		CabinCrew("C6", model.CabinRoleChef, model.CabinJunior, f.Plane),
	}
	for i := range f.Cabin {
		MustCreate(t, db, &f.Cabin[i])
	}
	return f
}

// Book создаёт пассажира с билетом на рейс. seat == nil: место не закреплено.
func (f *Fixture) Book(t *testing.T, db *gorm.DB, number string, age int, class string, seat *string) model.Passenger {
	t.Helper()

	p := model.Passenger{
		FirstName:      "Passenger",
		LastName:       number,
		Email:          number + "@example.com",
		PassportNumber: "PP" + number,
		Age:            age,
	}
	MustCreate(t, db, &p)
	ticket := model.Ticket{
		TicketNumber: number,
		FlightID:     f.Flight.ID,
		PassengerID:  p.ID,
		TicketClass:  class,
		SeatNumber:   seat,
		Status:       model.TicketStatusBooked,
	}
	MustCreate(t, db, &ticket)
	return p
}

// Link: from указывает to своим попутчиком.
func Link(t *testing.T, db *gorm.DB, from, to model.Passenger) {
	t.Helper()
	MustCreate(t, db, &model.PassengerLink{PassengerID: from.ID, AffiliateID: to.ID})
}
