package roster

import (
	"github.com/google/uuid"

	"github.com/Leganyst/flight-roster/internal/model"
)

// CrewAssignment — член экипажа в ростере: либо PilotAssignment, либо CabinAssignment.
type CrewAssignment interface {
	MemberID() uuid.UUID
	Type() model.CrewType
	Role() string
	snapshot() model.CrewSnapshot

	sealed()
}

// AssignedRole заполняется при чтении сохранённого ростера.
type PilotAssignment struct {
	Pilot        model.Pilot
	AssignedRole string
}

func (a PilotAssignment) MemberID() uuid.UUID  { return a.Pilot.ID }
func (a PilotAssignment) Type() model.CrewType { return model.CrewTypePilot }

// Role пилота: его квалификация на момент генерации.
func (a PilotAssignment) Role() string {
	if a.AssignedRole != "" {
		return a.AssignedRole
	}
	return string(a.Pilot.Seniority)
}

func (a PilotAssignment) snapshot() model.CrewSnapshot {
	return model.CrewSnapshot{
		Type:      model.CrewTypePilot,
		Code:      a.Pilot.Code,
		Name:      a.Pilot.FullName(),
		Seniority: string(a.Pilot.Seniority),
	}
}

func (PilotAssignment) sealed() {}

type CabinAssignment struct {
	Member       model.CabinCrew
	AssignedRole string
}

func (a CabinAssignment) MemberID() uuid.UUID  { return a.Member.ID }
func (a CabinAssignment) Type() model.CrewType { return model.CrewTypeCabin }

func (a CabinAssignment) Role() string {
	if a.AssignedRole != "" {
		return a.AssignedRole
	}
	return string(a.Member.Role)
}

func (a CabinAssignment) snapshot() model.CrewSnapshot {
	return model.CrewSnapshot{
		Type:      model.CrewTypeCabin,
		Code:      a.Member.Code,
		Name:      a.Member.FullName(),
		Role:      string(a.Member.Role),
		Seniority: string(a.Member.Seniority),
	}
}

func (CabinAssignment) sealed() {}

// crewAssignments: сначала пилоты, затем бортпроводники, в порядке выбора.
func crewAssignments(pilots []model.Pilot, cabin []model.CabinCrew) []CrewAssignment {
	out := make([]CrewAssignment, 0, len(pilots)+len(cabin))
	for _, p := range pilots {
		out = append(out, PilotAssignment{Pilot: p})
	}
	for _, c := range cabin {
		out = append(out, CabinAssignment{Member: c})
	}
	return out
}

func crewRow(a CrewAssignment) model.RosterCrewAssignment {
	return model.RosterCrewAssignment{
		CrewType:     a.Type(),
		MemberID:     a.MemberID(),
		AssignedRole: a.Role(),
	}
}
