package roster

import (
	"errors"
	"strings"
	"testing"
)

func rowOf(seat string) string {
	m := seatLabel.FindStringSubmatch(seat)
	if m == nil {
		return ""
	}
	return m[1]
}

func TestAssignSeats_GroupSameRow(t *testing.T) {
	pools := SeatPools{
		Business: []string{"1A", "1B", "2A", "2B"},
		Economy:  []string{"20A", "21A", "21B", "21C", "22A"},
	}
	a := member(30, "Economy", "")
	b := member(30, "Economy", "")
	c := member(1, "Economy", "")
	groups := []AffinityGroup{{Class: Economy, Members: []Member{a, b, c}}}

	alloc, err := AssignSeats(pools, groups, nil)
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	if len(alloc.Passengers) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(alloc.Passengers))
	}
	s1, s2 := seatOf(alloc.Passengers[0]), seatOf(alloc.Passengers[1])
	if s1 != "21A" || s2 != "21B" {
		t.Fatalf("expected 21A/21B, got %s/%s", s1, s2)
	}
	infant := alloc.Passengers[2]
	if !infant.IsInfant || infant.SeatNumber != nil {
		t.Fatalf("infant must be seatless: %+v", infant)
	}
	if len(pools.Economy) != 5 {
		t.Fatalf("input pools must not be mutated")
	}
	if strings.Join(alloc.Remaining.Economy, ",") != "20A,21C,22A" {
		t.Fatalf("unexpected remaining economy: %v", alloc.Remaining.Economy)
	}
}

func TestAssignSeats_GroupSequentialWhenNoRowFits(t *testing.T) {
	pools := SeatPools{Economy: []string{"20A", "21A", "22A"}}
	a := member(30, "Economy", "")
	b := member(30, "Economy", "")

	alloc, err := AssignSeats(pools, []AffinityGroup{{Class: Economy, Members: []Member{a, b}}}, nil)
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	if seatOf(alloc.Passengers[0]) != "20A" || seatOf(alloc.Passengers[1]) != "21A" {
		t.Fatalf("expected sequential seats, got %s/%s", seatOf(alloc.Passengers[0]), seatOf(alloc.Passengers[1]))
	}
}

func TestAssignSeats_GroupFallsBackToOtherClass(t *testing.T) {
	pools := SeatPools{Business: nil, Economy: []string{"20A", "20B"}}
	a := member(30, "Business", "")
	b := member(30, "Business", "")

	alloc, err := AssignSeats(pools, []AffinityGroup{{Class: Business, Members: []Member{a, b}}}, nil)
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	for _, p := range alloc.Passengers {
		if p.SeatType != Economy || !p.ClassFallback {
			t.Fatalf("expected economy fallback, got %+v", p)
		}
	}
	if alloc.Fallbacks() != 2 {
		t.Fatalf("expected 2 fallbacks, got %d", alloc.Fallbacks())
	}
}

func TestAssignSeats_PinnedSeatsRespected(t *testing.T) {
	pools := SeatPools{Economy: []string{"20A", "20B", "20C"}}
	pinned := member(30, "Economy", "20A")
	free := member(30, "Economy", "")

	alloc, err := AssignSeats(pools, nil, []Member{free, pinned})
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	if seatOf(alloc.Passengers[0]) != "20B" {
		t.Fatalf("pinned seat must not be handed out again, got %s", seatOf(alloc.Passengers[0]))
	}
	if seatOf(alloc.Passengers[1]) != "20A" {
		t.Fatalf("pinned passenger must keep 20A, got %s", seatOf(alloc.Passengers[1]))
	}
}

func TestAssignSeats_DuplicatePin(t *testing.T) {
	pools := SeatPools{Economy: []string{"20A", "20B"}}
	a := member(30, "Economy", "20A")
	b := member(30, "Economy", "20A")

	_, err := AssignSeats(pools, nil, []Member{a, b})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
}

func TestAssignSeats_IndividualFallsBackWhenOwnPoolEmpty(t *testing.T) {
	pools := SeatPools{Business: []string{"1A"}, Economy: nil}
	m := member(30, "Economy", "")

	alloc, err := AssignSeats(pools, nil, []Member{m})
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	p := alloc.Passengers[0]
	if seatOf(p) != "1A" || !p.ClassFallback || p.SeatType != Economy {
		t.Fatalf("unexpected assignment: %+v", p)
	}
}

func TestAssignSeats_NoSeatsLeft(t *testing.T) {
	pools := SeatPools{Business: []string{"1A"}, Economy: []string{"20A"}}
	p1 := member(30, "Business", "1A")
	p2 := member(30, "Economy", "20A")
	late := member(30, "Economy", "")

	_, err := AssignSeats(pools, nil, []Member{p1, p2, late})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "no seats left") {
		t.Fatalf("unexpected reason: %v", err)
	}
}

func TestAssignSeats_UniqueSeats(t *testing.T) {
	pools := BuildSeatPools(testPlane())
	var groups []AffinityGroup
	for i := 0; i < 3; i++ {
		groups = append(groups, AffinityGroup{Class: Economy, Members: []Member{
			member(30, "Economy", ""), member(30, "Economy", ""),
		}})
	}
	singles := []Member{member(30, "Business", ""), member(30, "Business", ""), member(1, "Economy", "")}

	alloc, err := AssignSeats(pools, groups, singles)
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	seen := map[string]bool{}
	for _, p := range alloc.Passengers {
		if p.SeatNumber == nil {
			if !p.IsInfant {
				t.Fatalf("non-infant without seat: %+v", p)
			}
			continue
		}
		if seen[*p.SeatNumber] {
			t.Fatalf("seat %s assigned twice", *p.SeatNumber)
		}
		seen[*p.SeatNumber] = true
	}
	for i := 0; i < 3; i++ {
		a, b := alloc.Passengers[2*i], alloc.Passengers[2*i+1]
		if rowOf(seatOf(a)) != rowOf(seatOf(b)) {
			t.Fatalf("group %d split across rows: %s/%s", i, seatOf(a), seatOf(b))
		}
	}
}

func TestAssignSeats_SharedLabelIssuedOnce(t *testing.T) {
	pools := SeatPools{Business: []string{"1A"}, Economy: []string{"1A", "20A"}}
	biz := member(30, "Business", "")
	eco := member(30, "Economy", "")
	late := member(30, "Economy", "")

	alloc, err := AssignSeats(pools, nil, []Member{biz, eco})
	if err != nil {
		t.Fatalf("AssignSeats: %v", err)
	}
	if seatOf(alloc.Passengers[0]) != "1A" || seatOf(alloc.Passengers[1]) != "20A" {
		t.Fatalf("unexpected seats: %s, %s", seatOf(alloc.Passengers[0]), seatOf(alloc.Passengers[1]))
	}
	if len(alloc.Remaining.Business) != 0 || len(alloc.Remaining.Economy) != 0 {
		t.Fatalf("issued seats must leave both pools: %+v", alloc.Remaining)
	}

	if _, err := AssignSeats(pools, nil, []Member{biz, eco, late}); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation for the third passenger, got %v", err)
	}
}
