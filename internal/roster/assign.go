package roster

import (
	"regexp"
	"slices"
	"sort"
	"strconv"

	"github.com/Leganyst/flight-roster/internal/model"
)

var seatLabel = regexp.MustCompile(`^(\d+)([A-Z]+)`)

// PassengerAssignment — итоговое место пассажира. SeatNumber == nil у младенцев.
type PassengerAssignment struct {
	Passenger     model.Passenger
	Ticket        model.Ticket
	SeatNumber    *string
	SeatType      SeatClass
	IsInfant      bool
	ClassFallback bool
}

// Allocation: результат рассадки и остаток пулов.
type Allocation struct {
	Passengers []PassengerAssignment
	Remaining  SeatPools
}

// Fallbacks считает пассажиров, которые получили место из пула чужого класса.
func (a *Allocation) Fallbacks() int {
	n := 0
	for _, p := range a.Passengers {
		if p.ClassFallback {
			n++
		}
	}
	return n
}

// AssignSeats рассаживает сначала группы попутчиков, затем одиночек.
// Входные пулы не изменяются.
func AssignSeats(pools SeatPools, groups []AffinityGroup, singles []Member) (*Allocation, error) {
	p := pools.clone()

	pinned := make(map[string]bool)
	pin := func(m Member) error {
		seat := m.Ticket.PinnedSeat()
		if seat == "" || m.Passenger.IsInfant() {
			return nil
		}
		if pinned[seat] {
			return violation("seat %s is pinned on more than one ticket", seat)
		}
		pinned[seat] = true
		p.remove(seat)
		return nil
	}
	for _, g := range groups {
		for _, m := range g.Members {
			if err := pin(m); err != nil {
				return nil, err
			}
		}
	}
	for _, m := range singles {
		if err := pin(m); err != nil {
			return nil, err
		}
	}

	alloc := &Allocation{}
	for _, g := range groups {
		assigned, err := p.seatGroup(g)
		if err != nil {
			return nil, err
		}
		alloc.Passengers = append(alloc.Passengers, assigned...)
	}

	for _, m := range singles {
		a := PassengerAssignment{
			Passenger: m.Passenger,
			Ticket:    m.Ticket,
			SeatType:  classOf(m.Ticket),
			IsInfant:  m.Passenger.IsInfant(),
		}
		switch {
		case a.IsInfant:
		case m.Ticket.PinnedSeat() != "":
			seat := m.Ticket.PinnedSeat()
			a.SeatNumber = &seat
		default:
			seat, from, err := p.take(a.SeatType)
			if err != nil {
				return nil, err
			}
			a.SeatNumber = &seat
			a.ClassFallback = from != a.SeatType
		}
		alloc.Passengers = append(alloc.Passengers, a)
	}

	alloc.Remaining = p
	return alloc, nil
}

func (p *SeatPools) seatGroup(g AffinityGroup) ([]PassengerAssignment, error) {
	class := g.Class
	need := g.SeatsNeeded()

	if need > 0 && len(*p.pool(class)) == 0 {
		if len(*p.pool(class.other())) == 0 {
			return nil, violation("no seats left to assign")
		}
		class = class.other()
	}

	seats := p.rowSeats(class, need)
	from := make([]SeatClass, len(seats), need)
	for i := range from {
		from[i] = class
	}
	for len(seats) < need {
		seat, c, err := p.take(class)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
		from = append(from, c)
	}

	out := make([]PassengerAssignment, 0, len(g.Members))
	next := 0
	for _, m := range g.Members {
		a := PassengerAssignment{
			Passenger: m.Passenger,
			Ticket:    m.Ticket,
			SeatType:  class,
			IsInfant:  m.Passenger.IsInfant(),
		}
		switch {
		case a.IsInfant:
		case m.Ticket.PinnedSeat() != "":
			seat := m.Ticket.PinnedSeat()
			a.SeatNumber = &seat
			a.SeatType = classOf(m.Ticket)
		default:
			seat := seats[next]
			a.SeatNumber = &seat
			a.SeatType = from[next]
			a.ClassFallback = from[next] != g.Class
			next++
		}
		out = append(out, a)
	}
	return out, nil
}

// rowSeats ищет ряд, где свободно не меньше count мест, и забирает
// из него места с младшими буквами. Ряды перебираются по возрастанию.
// Если такого ряда нет, ничего не забирает.
func (p *SeatPools) rowSeats(class SeatClass, count int) []string {
	if count <= 0 {
		return nil
	}
	pool := p.pool(class)

	byRow := make(map[int][]string)
	for _, seat := range *pool {
		m := seatLabel.FindStringSubmatch(seat)
		if m == nil {
			continue
		}
		row, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		byRow[row] = append(byRow[row], seat)
	}

	rows := make([]int, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	for _, row := range rows {
		seats := byRow[row]
		if len(seats) < count {
			continue
		}
		slices.Sort(seats)
		picked := seats[:count]
		for _, s := range picked {
			p.remove(s)
		}
		return picked
	}
	return nil
}

// take снимает первое место из пула класса, а если он пуст, из другого.
// Выданная метка убирается из обоих пулов.
func (p *SeatPools) take(class SeatClass) (string, SeatClass, error) {
	for _, c := range []SeatClass{class, class.other()} {
		pool := p.pool(c)
		if len(*pool) == 0 {
			continue
		}
		seat := (*pool)[0]
		p.remove(seat)
		return seat, c, nil
	}
	return "", "", violation("no seats left to assign")
}
