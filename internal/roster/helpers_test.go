package roster

import (
	"context"

	"github.com/google/uuid"

	"github.com/Leganyst/flight-roster/internal/model"
	"github.com/Leganyst/flight-roster/internal/testutil"
)

type fakePilots struct {
	pilots []model.Pilot
}

func (f fakePilots) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.Pilot, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Pilot
	for _, p := range f.pilots {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListQualified отдаёт всех: отбор должен сделать сам селектор.
func (f fakePilots) ListQualified(context.Context, uuid.UUID, int) ([]model.Pilot, error) {
	return append([]model.Pilot(nil), f.pilots...), nil
}

type fakeCabinCrew struct {
	crew []model.CabinCrew
}

func (f fakeCabinCrew) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.CabinCrew, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.CabinCrew
	for _, c := range f.crew {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f fakeCabinCrew) ListQualified(context.Context, uuid.UUID) ([]model.CabinCrew, error) {
	return append([]model.CabinCrew(nil), f.crew...), nil
}

func testPlane() model.PlaneType { return testutil.Plane() }

func testFlightContext(plane model.PlaneType, distance int) *FlightContext {
	return &FlightContext{
		Flight:     model.Flight{ID: uuid.New(), FlightNumber: "FA0001", PlaneTypeID: &plane.ID, DistanceKm: &distance},
		Plane:      plane,
		DistanceKm: distance,
	}
}

func pilot(code string, seniority model.PilotSeniority, rangeKm int) model.Pilot {
	return testutil.Pilot(code, seniority, rangeKm)
}

func cabin(code string, role model.CabinRole, seniority model.CabinSeniority, planes ...model.PlaneType) model.CabinCrew {
	return testutil.CabinCrew(code, role, seniority, planes...)
}

func member(age int, class string, seat string) Member {
	p := model.Passenger{ID: uuid.New(), FirstName: "P", LastName: uuid.NewString()[:8], Age: age}
	t := model.Ticket{ID: uuid.New(), PassengerID: p.ID, TicketClass: class, Status: model.TicketStatusBooked, Passenger: &p}
	if seat != "" {
		t.SeatNumber = &seat
	}
	return Member{Passenger: p, Ticket: t}
}

func seatOf(a PassengerAssignment) string {
	if a.SeatNumber == nil {
		return ""
	}
	return *a.SeatNumber
}

func strPtr(s string) *string { return &s }
