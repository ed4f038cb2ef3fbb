package roster

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Leganyst/flight-roster/internal/model"
	"github.com/Leganyst/flight-roster/internal/repository"
)

const maxTrainees = 2

// SelectPilots выбирает пилотов на рейс: проверяет ручной список
// или собирает состав автоматически из допущенного пула.
func SelectPilots(
	ctx context.Context,
	pilots repository.PilotRepository,
	fc *FlightContext,
	mode SelectionMode,
) ([]model.Pilot, error) {
	if mode.IsManual() {
		return selectPilotsManual(ctx, pilots, fc, mode.IDs())
	}
	return selectPilotsAuto(ctx, pilots, fc)
}

func selectPilotsManual(
	ctx context.Context,
	pilots repository.PilotRepository,
	fc *FlightContext,
	ids []uuid.UUID,
) ([]model.Pilot, error) {
	list, err := pilots.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load pilots: %w", err)
	}
	if len(list) == 0 {
		return nil, violation("no pilots selected")
	}

	found := make(map[uuid.UUID]bool, len(list))
	for _, p := range list {
		found[p.ID] = true
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, violation("unknown pilot ids: %s", strings.Join(missing, ", "))
	}

	sortPilots(list)
	for _, p := range list {
		if reason := pilotDisqualification(p, fc); reason != "" {
			return nil, violation("%s", reason)
		}
	}

	if broken := pilotCompositionErrors(list); len(broken) > 0 {
		return nil, violation("invalid pilot selection: %s", strings.Join(broken, "; "))
	}
	return list, nil
}

func selectPilotsAuto(ctx context.Context, pilots repository.PilotRepository, fc *FlightContext) ([]model.Pilot, error) {
	pool, err := pilots.ListQualified(ctx, fc.Plane.ID, fc.DistanceKm)
	if err != nil {
		return nil, fmt.Errorf("load pilot pool: %w", err)
	}
	pool = slices.DeleteFunc(pool, func(p model.Pilot) bool {
		return pilotDisqualification(p, fc) != ""
	})
	sortPilots(pool)

	var seniors, juniors, trainees []model.Pilot
	for _, p := range pool {
		switch p.Seniority {
		case model.PilotSenior:
			seniors = append(seniors, p)
		case model.PilotJunior:
			juniors = append(juniors, p)
		case model.PilotTrainee:
			trainees = append(trainees, p)
		}
	}

	if len(seniors) == 0 || len(juniors) == 0 {
		return nil, violation("insufficient pilots to satisfy senior and junior requirements")
	}

	picks := []model.Pilot{seniors[0], juniors[0]}
	picks = append(picks, trainees[:min(maxTrainees, len(trainees))]...)
	return picks, nil
}

// pilotDisqualification возвращает причину, по которой пилот не может лететь, или "".
func pilotDisqualification(p model.Pilot, fc *FlightContext) string {
	if p.VehicleRestrictionID != nil && *p.VehicleRestrictionID != fc.Plane.ID {
		return fmt.Sprintf("pilot %s is not qualified for plane type %s", p.Code, fc.Plane.Code)
	}
	if p.MaxRangeKm < fc.DistanceKm {
		return fmt.Sprintf("pilot %s max range (%dkm) is less than flight distance (%dkm)",
			p.Code, p.MaxRangeKm, fc.DistanceKm)
	}
	return ""
}

func pilotCompositionErrors(list []model.Pilot) []string {
	var seniors, juniors, trainees int
	for _, p := range list {
		switch p.Seniority {
		case model.PilotSenior:
			seniors++
		case model.PilotJunior:
			juniors++
		case model.PilotTrainee:
			trainees++
		}
	}

	var broken []string
	if seniors == 0 {
		broken = append(broken, "flight requires at least one senior pilot")
	}
	if juniors == 0 {
		broken = append(broken, "flight requires at least one junior pilot")
	}
	if trainees > maxTrainees {
		broken = append(broken, fmt.Sprintf("flight can have at most two trainees, but %d were selected", trainees))
	}
	return broken
}

func sortPilots(list []model.Pilot) {
	slices.SortStableFunc(list, func(a, b model.Pilot) int {
		return cmpOr(
			cmp.Compare(a.Seniority, b.Seniority),
			cmp.Compare(a.Code, b.Code),
		)
	})
}
