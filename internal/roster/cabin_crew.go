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

const (
	requiredCabinJuniors = 4
	maxExtraCabinSeniors = 3
	maxChefs             = 2
)

// SelectCabinCrew — аналог SelectPilots для бортпроводников.
func SelectCabinCrew(
	ctx context.Context,
	crew repository.CabinCrewRepository,
	fc *FlightContext,
	mode SelectionMode,
) ([]model.CabinCrew, error) {
	if mode.IsManual() {
		return selectCabinCrewManual(ctx, crew, fc, mode.IDs())
	}
	return selectCabinCrewAuto(ctx, crew, fc)
}

func selectCabinCrewManual(
	ctx context.Context,
	repo repository.CabinCrewRepository,
	fc *FlightContext,
	ids []uuid.UUID,
) ([]model.CabinCrew, error) {
	list, err := repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load cabin crew: %w", err)
	}
	if len(list) == 0 {
		return nil, violation("no cabin crew selected")
	}

	found := make(map[uuid.UUID]bool, len(list))
	for _, c := range list {
		found[c.ID] = true
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, violation("unknown cabin crew ids: %s", strings.Join(missing, ", "))
	}

	sortCabinCrew(list)
	for _, c := range list {
		if !c.QualifiedFor(fc.Plane.ID) {
			return nil, violation("cabin crew %s is not qualified for plane type %s", c.Code, fc.Plane.Code)
		}
	}
	if !hasSeniorCabinCrew(list) {
		return nil, violation("at least one senior cabin crew required")
	}
	if len(list) < fc.Plane.MinCabinCrew {
		return nil, violation("at least %d cabin crew members required, but only %d provided",
			fc.Plane.MinCabinCrew, len(list))
	}
	if len(list) > fc.Plane.MaxCabinCrew {
		return nil, violation("maximum %d cabin crew members allowed, but %d provided",
			fc.Plane.MaxCabinCrew, len(list))
	}
	return list, nil
}

// selectCabinCrewAuto набирает состав по приоритетам: старший, четверо младших,
// до трёх старших сверху, повара до двух на борту, добор младшими до минимума,
// затем обрезка по максимуму типа самолёта.
func selectCabinCrewAuto(ctx context.Context, repo repository.CabinCrewRepository, fc *FlightContext) ([]model.CabinCrew, error) {
	pool, err := repo.ListQualified(ctx, fc.Plane.ID)
	if err != nil {
		return nil, fmt.Errorf("load cabin crew pool: %w", err)
	}
	pool = slices.DeleteFunc(pool, func(c model.CabinCrew) bool {
		return !c.QualifiedFor(fc.Plane.ID)
	})
	sortCabinCrew(pool)

	var seniors, juniors, chefs []model.CabinCrew
	for _, c := range pool {
		switch c.Seniority {
		case model.CabinSenior:
			seniors = append(seniors, c)
		case model.CabinJunior:
			juniors = append(juniors, c)
		}
		if c.Role == model.CabinRoleChef {
			chefs = append(chefs, c)
		}
	}

	if len(seniors) == 0 {
		return nil, violation("at least one senior cabin crew required")
	}
	if len(juniors) < requiredCabinJuniors {
		return nil, violation("at least four junior cabin crew required")
	}

	b := newCrewBuilder()

	lead := seniors[0]
	if i := slices.IndexFunc(seniors, func(c model.CabinCrew) bool { return c.Role == model.CabinRoleChief }); i >= 0 {
		lead = seniors[i]
	}
	b.add(lead)

	for _, j := range juniors[:requiredCabinJuniors] {
		b.add(j)
	}

	extra := 0
	for _, s := range seniors {
		if extra == maxExtraCabinSeniors {
			break
		}
		if b.add(s) {
			extra++
		}
	}

	for _, c := range chefs {
		if b.chefs() >= maxChefs {
			break
		}
		b.add(c)
	}

	minNeeded := fc.Plane.MinCabinCrew
	for _, j := range juniors[requiredCabinJuniors:] {
		if len(b.list) >= minNeeded {
			break
		}
		b.add(j)
	}

	crew := b.list[:min(len(b.list), fc.Plane.MaxCabinCrew)]
	if len(crew) < minNeeded {
		return nil, violation("at least %d cabin crew members required, but only %d qualified crew available",
			minNeeded, len(crew))
	}
	if !hasSeniorCabinCrew(crew) {
		return nil, violation("at least one senior cabin crew required")
	}
	return crew, nil
}

// crewBuilder не даёт включить одного человека дважды.
type crewBuilder struct {
	list []model.CabinCrew
	seen map[uuid.UUID]bool
}

func newCrewBuilder() *crewBuilder {
	return &crewBuilder{seen: make(map[uuid.UUID]bool)}
}

func (b *crewBuilder) add(c model.CabinCrew) bool {
	if b.seen[c.ID] {
		return false
	}
	b.seen[c.ID] = true
	b.list = append(b.list, c)
	return true
}

func (b *crewBuilder) chefs() int {
	n := 0
	for _, c := range b.list {
		if c.Role == model.CabinRoleChef {
			n++
		}
	}
	return n
}

func hasSeniorCabinCrew(list []model.CabinCrew) bool {
	return slices.ContainsFunc(list, func(c model.CabinCrew) bool {
		return c.Seniority == model.CabinSenior
	})
}

func sortCabinCrew(list []model.CabinCrew) {
	slices.SortStableFunc(list, func(a, b model.CabinCrew) int {
		return cmpOr(
			cmp.Compare(a.Role, b.Role),
			cmp.Compare(a.Seniority, b.Seniority),
			cmp.Compare(a.Code, b.Code),
		)
	})
}
