package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/model"
	"github.com/Leganyst/flight-roster/internal/queue"
	"github.com/Leganyst/flight-roster/internal/repository"
)

// Publisher получает событие о ростере после коммита.
type Publisher interface {
	PublishRosterGenerated(ctx context.Context, event queue.RosterGeneratedEvent) error
}

// Request описывает один вызов генерации.
type Request struct {
	FlightID  uuid.UUID
	Backend   string
	Pilots    SelectionMode
	CabinCrew SelectionMode
	CreatedBy *uuid.UUID
}

// Generator проводит рейс через весь конвейер и сохраняет ростер
// одной транзакцией.
type Generator struct {
	db        *gorm.DB
	locker    Locker
	publisher Publisher
	log       *slog.Logger

	DefaultBackend string
}

// NewGenerator: nil locker заменяется на LocalLocker, nil publisher отключает события.
func NewGenerator(db *gorm.DB, locker Locker, publisher Publisher, logger *slog.Logger) *Generator {
	if locker == nil {
		locker = NewLocalLocker()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		db:             db,
		locker:         locker,
		publisher:      publisher,
		log:            logger,
		DefaultBackend: model.DefaultBackend,
	}
}

// Generate создаёт новый ростер рейса. При любой ошибке ничего не сохраняется.
func (g *Generator) Generate(ctx context.Context, req Request) (*Aggregate, error) {
	backend := req.Backend
	if backend == "" {
		backend = g.DefaultBackend
	}

	unlock, err := g.locker.Lock(ctx, req.FlightID.String())
	if err != nil {
		return nil, err
	}
	defer unlock()

	var (
		agg    *Aggregate
		alloc  *Allocation
		flight model.Flight
	)
	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := repository.NewStore(tx)

		locked, err := store.Rosters.TryLockFlight(ctx, req.FlightID)
		if err != nil {
			return fmt.Errorf("lock flight: %w", err)
		}
		if !locked {
			return inProgress("roster generation for flight %s is already in progress", req.FlightID)
		}

		if req.CreatedBy != nil {
			if _, err := store.Users.GetByID(ctx, *req.CreatedBy); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("user %s not found", *req.CreatedBy)
				}
				return fmt.Errorf("load user: %w", err)
			}
		}

		fc, err := LoadFlight(ctx, store.Flights, req.FlightID)
		if err != nil {
			return err
		}
		flight = fc.Flight

		pilots, err := SelectPilots(ctx, store.Pilots, fc, req.Pilots)
		if err != nil {
			return err
		}
		cabin, err := SelectCabinCrew(ctx, store.CabinCrew, fc, req.CabinCrew)
		if err != nil {
			return err
		}

		tickets, err := store.Tickets.ListBookedByFlight(ctx, fc.Flight.ID)
		if err != nil {
			return fmt.Errorf("load tickets: %w", err)
		}
		passengerIDs := make([]uuid.UUID, 0, len(tickets))
		for _, t := range tickets {
			passengerIDs = append(passengerIDs, t.PassengerID)
		}
		links, err := store.Tickets.ListLinks(ctx, passengerIDs)
		if err != nil {
			return fmt.Errorf("load passenger links: %w", err)
		}

		pools := BuildSeatPools(fc.Plane)
		groups, singles := GroupPassengers(tickets, links)
		alloc, err = AssignSeats(pools, groups, singles)
		if err != nil {
			return err
		}

		crew := crewAssignments(pilots, cabin)
		r := assemble(fc, backend, req.CreatedBy, crew, alloc)
		if err := store.Rosters.Create(ctx, r); err != nil {
			return fmt.Errorf("save roster: %w", err)
		}

		for i := range r.PassengerAssignments {
			p := alloc.Passengers[i].Passenger
			r.PassengerAssignments[i].Passenger = &p
		}
		r.Flight = &fc.Flight

		agg = &Aggregate{Roster: *r, Crew: crew, Passengers: r.PassengerAssignments}
		return nil
	})
	if err != nil {
		g.log.Warn("roster generation failed",
			"flight_id", req.FlightID,
			"pilots", req.Pilots.String(),
			"cabin_crew", req.CabinCrew.String(),
			"error", err,
		)
		return nil, err
	}

	if n := alloc.Fallbacks(); n > 0 {
		g.log.Warn("passengers seated outside their ticket class",
			"roster_id", agg.Roster.ID,
			"flight", flight.FlightNumber,
			"count", n,
		)
	}
	g.log.Info("roster generated",
		"roster_id", agg.Roster.ID,
		"flight", flight.FlightNumber,
		"backend", backend,
		"crew", len(agg.Crew),
		"passengers", len(agg.Passengers),
	)

	g.publish(ctx, agg, alloc)
	return agg, nil
}

// publish не влияет на результат: ростер уже закоммичен.
func (g *Generator) publish(ctx context.Context, agg *Aggregate, alloc *Allocation) {
	if g.publisher == nil {
		return
	}
	ev := queue.RosterGeneratedEvent{
		RosterID:       agg.Roster.ID.String(),
		FlightID:       agg.Roster.FlightID.String(),
		Backend:        agg.Roster.Backend,
		Pilots:         len(agg.Pilots()),
		CabinCrew:      len(agg.CabinCrew()),
		Passengers:     len(agg.Passengers),
		ClassFallbacks: alloc.Fallbacks(),
		GeneratedAt:    agg.Roster.CreatedAt.UTC().Format(time.RFC3339),
	}
	if agg.Roster.Flight != nil {
		ev.FlightNumber = agg.Roster.Flight.FlightNumber
	}
	if agg.Roster.CreatedByID != nil {
		ev.CreatedBy = agg.Roster.CreatedByID.String()
	}

	if err := g.publisher.PublishRosterGenerated(ctx, ev); err != nil {
		g.log.Warn("publish roster event", "roster_id", ev.RosterID, "error", err)
	}
}

// Get читает сохранённый ростер вместе с экипажем.
func (g *Generator) Get(ctx context.Context, id uuid.UUID) (*Aggregate, error) {
	store := repository.NewStore(g.db)

	r, err := store.Rosters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("roster %s not found", id)
		}
		return nil, fmt.Errorf("load roster: %w", err)
	}

	var pilotIDs, cabinIDs []uuid.UUID
	for _, row := range r.CrewAssignments {
		switch row.CrewType {
		case model.CrewTypePilot:
			pilotIDs = append(pilotIDs, row.MemberID)
		case model.CrewTypeCabin:
			cabinIDs = append(cabinIDs, row.MemberID)
		}
	}

	pilots := make(map[uuid.UUID]model.Pilot, len(pilotIDs))
	if len(pilotIDs) > 0 {
		list, err := store.Pilots.ListByIDs(ctx, pilotIDs)
		if err != nil {
			return nil, fmt.Errorf("load roster pilots: %w", err)
		}
		for _, p := range list {
			pilots[p.ID] = p
		}
	}
	cabin := make(map[uuid.UUID]model.CabinCrew, len(cabinIDs))
	if len(cabinIDs) > 0 {
		list, err := store.CabinCrew.ListByIDs(ctx, cabinIDs)
		if err != nil {
			return nil, fmt.Errorf("load roster cabin crew: %w", err)
		}
		for _, c := range list {
			cabin[c.ID] = c
		}
	}

	agg := &Aggregate{Roster: *r, Passengers: r.PassengerAssignments}
	for _, row := range r.CrewAssignments {
		switch row.CrewType {
		case model.CrewTypePilot:
			p, ok := pilots[row.MemberID]
			if !ok {
				p = model.Pilot{ID: row.MemberID}
			}
			agg.Crew = append(agg.Crew, PilotAssignment{Pilot: p, AssignedRole: row.AssignedRole})
		case model.CrewTypeCabin:
			c, ok := cabin[row.MemberID]
			if !ok {
				c = model.CabinCrew{ID: row.MemberID}
			}
			agg.Crew = append(agg.Crew, CabinAssignment{Member: c, AssignedRole: row.AssignedRole})
		}
	}
	return agg, nil
}

// List возвращает ростеры рейса, новые первыми. uuid.Nil означает все рейсы.
func (g *Generator) List(ctx context.Context, flightID uuid.UUID, limit, offset int) ([]model.Roster, int64, error) {
	rosters, total, err := repository.NewGormRosterRepository(g.db).ListByFlight(ctx, flightID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list rosters: %w", err)
	}
	return rosters, total, nil
}
