package roster

import (
	"github.com/google/uuid"

	"github.com/Leganyst/flight-roster/internal/model"
)

// Member — пассажир рейса вместе с его билетом.
type Member struct {
	Passenger model.Passenger
	Ticket    model.Ticket
}

func (m Member) needsSeat() bool {
	return !m.Passenger.IsInfant() && m.Ticket.PinnedSeat() == ""
}

// AffinityGroup — пассажир и перечисленные им попутчики. Members[0] — инициатор,
// по его билету определяется класс группы.
type AffinityGroup struct {
	Class   SeatClass
	Members []Member
}

// SeatsNeeded: сколько мест нужно выдать из пулов.
func (g AffinityGroup) SeatsNeeded() int {
	n := 0
	for _, m := range g.Members {
		if m.needsSeat() {
			n++
		}
	}
	return n
}

// maxCompanions: пассажир указывает не больше двух попутчиков,
// остальные связи при группировке игнорируются.
const maxCompanions = 2

// GroupPassengers делит пассажиров рейса на группы попутчиков и одиночек.
//
// Связи направленные: обход идёт от пассажира билета к тем, кого он указал.
// Попутчики без билета на этот рейс пропускаются, уже попавший в группу
// пассажир повторно не обрабатывается.
func GroupPassengers(tickets []model.Ticket, links []model.PassengerLink) ([]AffinityGroup, []Member) {
	arena := make([]Member, 0, len(tickets))
	index := make(map[uuid.UUID]int, len(tickets))
	for _, t := range tickets {
		if t.Status == model.TicketStatusCancelled {
			continue
		}
		if _, dup := index[t.PassengerID]; dup {
			continue
		}
		p := model.Passenger{ID: t.PassengerID}
		if t.Passenger != nil {
			p = *t.Passenger
		}
		index[t.PassengerID] = len(arena)
		arena = append(arena, Member{Passenger: p, Ticket: t})
	}

	companions := make(map[uuid.UUID][]uuid.UUID, len(links))
	for _, l := range links {
		companions[l.PassengerID] = append(companions[l.PassengerID], l.AffiliateID)
	}

	consumed := make(map[uuid.UUID]bool, len(arena))
	var groups []AffinityGroup
	for _, m := range arena {
		id := m.Passenger.ID
		if consumed[id] {
			continue
		}

		var picked []int
		for _, aid := range companions[id] {
			j, ok := index[aid]
			if !ok || aid == id || consumed[aid] {
				continue
			}
			picked = append(picked, j)
			if len(picked) == maxCompanions {
				break
			}
		}
		if len(picked) == 0 {
			continue
		}

		group := AffinityGroup{Class: classOf(m.Ticket), Members: []Member{m}}
		consumed[id] = true
		for _, j := range picked {
			group.Members = append(group.Members, arena[j])
			consumed[arena[j].Passenger.ID] = true
		}
		groups = append(groups, group)
	}

	var singles []Member
	for _, m := range arena {
		if !consumed[m.Passenger.ID] {
			singles = append(singles, m)
		}
	}
	return groups, singles
}
