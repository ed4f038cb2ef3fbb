package roster

import (
	"testing"

	"github.com/Leganyst/flight-roster/internal/model"
)

func tickets(members ...Member) []model.Ticket {
	out := make([]model.Ticket, 0, len(members))
	for _, m := range members {
		out = append(out, m.Ticket)
	}
	return out
}

func TestGroupPassengers_DirectionalTraversal(t *testing.T) {
	a := member(30, "Economy", "")
	b := member(28, "Business", "")
	c := member(1, "Economy", "")
	d := member(40, "Economy", "")

	links := []model.PassengerLink{
		{PassengerID: a.Passenger.ID, AffiliateID: b.Passenger.ID},
		{PassengerID: a.Passenger.ID, AffiliateID: c.Passenger.ID},
		// b указывает на a, но a уже в группе
		{PassengerID: b.Passenger.ID, AffiliateID: a.Passenger.ID},
	}

	groups, singles := GroupPassengers(tickets(a, b, c, d), links)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Class != Economy {
		t.Fatalf("group class must follow the primary ticket, got %s", g.Class)
	}
	if len(g.Members) != 3 || g.Members[0].Passenger.ID != a.Passenger.ID {
		t.Fatalf("unexpected group members: %+v", g.Members)
	}
	if g.SeatsNeeded() != 2 {
		t.Fatalf("infant must not need a seat, got %d seats", g.SeatsNeeded())
	}
	if len(singles) != 1 || singles[0].Passenger.ID != d.Passenger.ID {
		t.Fatalf("unexpected singles: %+v", singles)
	}
}

func TestGroupPassengers_SkipsCompanionsWithoutTicket(t *testing.T) {
	a := member(30, "Economy", "")
	absent := member(30, "Economy", "")
	cancelled := member(30, "Economy", "")
	cancelled.Ticket.Status = model.TicketStatusCancelled

	links := []model.PassengerLink{
		{PassengerID: a.Passenger.ID, AffiliateID: absent.Passenger.ID},
		{PassengerID: a.Passenger.ID, AffiliateID: cancelled.Passenger.ID},
	}

	groups, singles := GroupPassengers(tickets(a, cancelled), links)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
	if len(singles) != 1 || singles[0].Passenger.ID != a.Passenger.ID {
		t.Fatalf("unexpected singles: %+v", singles)
	}
}

func TestGroupPassengers_LaterPrimaryPullsEarlierPassenger(t *testing.T) {
	a := member(30, "Economy", "")
	b := member(30, "Business", "")
	links := []model.PassengerLink{{PassengerID: b.Passenger.ID, AffiliateID: a.Passenger.ID}}

	groups, singles := GroupPassengers(tickets(a, b), links)
	if len(groups) != 1 || len(singles) != 0 {
		t.Fatalf("expected a single group, got %d groups and %d singles", len(groups), len(singles))
	}
	if groups[0].Members[0].Passenger.ID != b.Passenger.ID || groups[0].Class != Business {
		t.Fatalf("b must be the primary of a business group")
	}
}

func TestGroupPassengers_AtMostTwoCompanions(t *testing.T) {
	a := member(30, "Business", "")
	b := member(30, "Business", "")
	c := member(30, "Business", "")
	d := member(30, "Business", "")
	e := member(30, "Business", "")

	links := []model.PassengerLink{
		{PassengerID: a.Passenger.ID, AffiliateID: b.Passenger.ID},
		{PassengerID: a.Passenger.ID, AffiliateID: c.Passenger.ID},
		{PassengerID: a.Passenger.ID, AffiliateID: d.Passenger.ID},
		{PassengerID: a.Passenger.ID, AffiliateID: e.Passenger.ID},
	}

	groups, singles := GroupPassengers(tickets(a, b, c, d, e), links)
	if len(groups) != 1 || len(groups[0].Members) != 3 {
		t.Fatalf("expected one group of three, got %+v", groups)
	}
	g := groups[0].Members
	if g[1].Passenger.ID != b.Passenger.ID || g[2].Passenger.ID != c.Passenger.ID {
		t.Fatalf("the first two linked companions must be taken")
	}
	if len(singles) != 2 || singles[0].Passenger.ID != d.Passenger.ID || singles[1].Passenger.ID != e.Passenger.ID {
		t.Fatalf("extra companions must be seated individually: %+v", singles)
	}
}
