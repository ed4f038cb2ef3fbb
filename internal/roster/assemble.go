package roster

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Leganyst/flight-roster/internal/model"
)

// Aggregate — ростер вместе с экипажем и рассадкой.
type Aggregate struct {
	Roster     model.Roster
	Crew       []CrewAssignment
	Passengers []model.RosterPassengerAssignment
}

func (a *Aggregate) Pilots() []PilotAssignment {
	var out []PilotAssignment
	for _, c := range a.Crew {
		if p, ok := c.(PilotAssignment); ok {
			out = append(out, p)
		}
	}
	return out
}

func (a *Aggregate) CabinCrew() []CabinAssignment {
	var out []CabinAssignment
	for _, c := range a.Crew {
		if m, ok := c.(CabinAssignment); ok {
			out = append(out, m)
		}
	}
	return out
}

// assemble собирает ростер с дочерними записями, готовый к сохранению.
func assemble(
	fc *FlightContext,
	backend string,
	createdBy *uuid.UUID,
	crew []CrewAssignment,
	alloc *Allocation,
) *model.Roster {
	payload := model.RosterPayload{
		Flight:         fc.Flight.FlightNumber,
		Backend:        backend,
		Crew:           make([]model.CrewSnapshot, 0, len(crew)),
		Passengers:     make([]model.PassengerSnapshot, 0, len(alloc.Passengers)),
		RemainingSeats: alloc.Remaining.Layout(),
	}

	r := &model.Roster{
		FlightID:    fc.Flight.ID,
		Backend:     backend,
		CreatedByID: createdBy,
	}

	for _, c := range crew {
		payload.Crew = append(payload.Crew, c.snapshot())
		r.CrewAssignments = append(r.CrewAssignments, crewRow(c))
	}

	for _, a := range alloc.Passengers {
		payload.Passengers = append(payload.Passengers, model.PassengerSnapshot{
			Name:     a.Passenger.FullName(),
			Seat:     a.SeatNumber,
			SeatType: string(a.SeatType),
			Infant:   a.IsInfant,
		})
		r.PassengerAssignments = append(r.PassengerAssignments, model.RosterPassengerAssignment{
			PassengerID:   a.Passenger.ID,
			SeatNumber:    a.SeatNumber,
			SeatType:      string(a.SeatType),
			IsInfant:      a.IsInfant,
			ClassFallback: a.ClassFallback,
		})
	}

	r.Payload = datatypes.NewJSONType(payload)
	return r
}
