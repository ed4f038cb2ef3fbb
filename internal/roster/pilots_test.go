package roster

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Leganyst/flight-roster/internal/model"
)

func TestSelectPilots_AutomaticPicksSeniorJuniorAndTwoTrainees(t *testing.T) {
	plane := testPlane()
	other := uuid.New()
	fc := testFlightContext(plane, 3000)

	restricted := pilot("S0", model.PilotSenior, 9000)
	restricted.VehicleRestrictionID = &other
	short := pilot("S1", model.PilotSenior, 1000)
	own := pilot("S2", model.PilotSenior, 9000)
	own.VehicleRestrictionID = &plane.ID

	repo := fakePilots{pilots: []model.Pilot{
		restricted, short, own,
		pilot("J2", model.PilotJunior, 4000),
		pilot("J1", model.PilotJunior, 4000),
		pilot("T3", model.PilotTrainee, 4000),
		pilot("T1", model.PilotTrainee, 4000),
		pilot("T2", model.PilotTrainee, 4000),
	}}

	got, err := SelectPilots(context.Background(), repo, fc, Automatic())
	if err != nil {
		t.Fatalf("SelectPilots: %v", err)
	}

	var codes []string
	for _, p := range got {
		codes = append(codes, p.Code)
		if p.VehicleRestrictionID != nil && *p.VehicleRestrictionID != plane.ID {
			t.Fatalf("pilot %s is restricted to another plane", p.Code)
		}
		if p.MaxRangeKm < fc.DistanceKm {
			t.Fatalf("pilot %s cannot cover distance", p.Code)
		}
	}
	if strings.Join(codes, ",") != "S2,J1,T1,T2" {
		t.Fatalf("unexpected pilots: %v", codes)
	}
}

func TestSelectPilots_AutomaticInsufficient(t *testing.T) {
	fc := testFlightContext(testPlane(), 3000)
	repo := fakePilots{pilots: []model.Pilot{
		pilot("S1", model.PilotSenior, 5000),
		pilot("J1", model.PilotJunior, 100),
	}}

	_, err := SelectPilots(context.Background(), repo, fc, Automatic())
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "insufficient pilots") {
		t.Fatalf("unexpected reason: %v", err)
	}
}

func TestSelectPilots_ManualOnlyTrainees(t *testing.T) {
	fc := testFlightContext(testPlane(), 1000)
	t1 := pilot("T1", model.PilotTrainee, 5000)
	t2 := pilot("T2", model.PilotTrainee, 5000)
	repo := fakePilots{pilots: []model.Pilot{t1, t2}}

	_, err := SelectPilots(context.Background(), repo, fc, Manual(t1.ID, t2.ID))
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	for _, want := range []string{"at least one senior pilot", "at least one junior pilot"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("reason %q does not mention %q", err.Error(), want)
		}
	}
}

func TestSelectPilots_ManualTooManyTrainees(t *testing.T) {
	fc := testFlightContext(testPlane(), 1000)
	list := []model.Pilot{
		pilot("S1", model.PilotSenior, 5000),
		pilot("J1", model.PilotJunior, 5000),
		pilot("T1", model.PilotTrainee, 5000),
		pilot("T2", model.PilotTrainee, 5000),
		pilot("T3", model.PilotTrainee, 5000),
	}
	var ids []uuid.UUID
	for _, p := range list {
		ids = append(ids, p.ID)
	}

	_, err := SelectPilots(context.Background(), fakePilots{pilots: list}, fc, Manual(ids...))
	if err == nil || !strings.Contains(err.Error(), "at most two trainees, but 3 were selected") {
		t.Fatalf("expected trainee limit violation, got %v", err)
	}
}

func TestSelectPilots_ManualChecksQualification(t *testing.T) {
	plane := testPlane()
	other := uuid.New()
	fc := testFlightContext(plane, 2000)

	s := pilot("S1", model.PilotSenior, 5000)
	s.VehicleRestrictionID = &other
	j := pilot("J1", model.PilotJunior, 5000)

	_, err := SelectPilots(context.Background(), fakePilots{pilots: []model.Pilot{s, j}}, fc, Manual(s.ID, j.ID))
	if err == nil || !strings.Contains(err.Error(), "pilot S1 is not qualified") {
		t.Fatalf("expected qualification violation, got %v", err)
	}

	s.VehicleRestrictionID = nil
	j.MaxRangeKm = 1500
	_, err = SelectPilots(context.Background(), fakePilots{pilots: []model.Pilot{s, j}}, fc, Manual(s.ID, j.ID))
	if err == nil || !strings.Contains(err.Error(), "pilot J1 max range") {
		t.Fatalf("expected range violation, got %v", err)
	}
}

func TestSelectPilots_ManualUnknownIDs(t *testing.T) {
	fc := testFlightContext(testPlane(), 1000)
	s := pilot("S1", model.PilotSenior, 5000)
	missing := uuid.New()

	_, err := SelectPilots(context.Background(), fakePilots{pilots: []model.Pilot{s}}, fc, Manual(s.ID, missing))
	if err == nil || !strings.Contains(err.Error(), missing.String()) {
		t.Fatalf("expected unknown id violation, got %v", err)
	}

	_, err = SelectPilots(context.Background(), fakePilots{}, fc, Manual(missing))
	if err == nil || err.Error() != "no pilots selected" {
		t.Fatalf("expected no pilots selected, got %v", err)
	}
}

func TestSelectionMode(t *testing.T) {
	if Automatic().IsManual() {
		t.Fatalf("automatic mode reported as manual")
	}
	if Manual().IsManual() {
		t.Fatalf("empty manual list must fall back to automatic")
	}

	id := uuid.New()
	m := Manual(id, id)
	if !m.IsManual() || len(m.IDs()) != 1 {
		t.Fatalf("expected deduplicated manual ids, got %v", m.IDs())
	}
	if m.String() != "manual" || Automatic().String() != "automatic" {
		t.Fatalf("unexpected mode names")
	}
}
