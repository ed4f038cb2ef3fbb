package roster

import (
	"fmt"
	"slices"

	"github.com/Leganyst/flight-roster/internal/model"
)

type SeatClass string

const (
	Business SeatClass = "business"
	Economy  SeatClass = "economy"
)

func (c SeatClass) other() SeatClass {
	if c == Business {
		return Economy
	}
	return Business
}

func classOf(t model.Ticket) SeatClass {
	if t.IsBusiness() {
		return Business
	}
	return Economy
}

// Параметры синтеза мест, когда явной схемы салона нет.
const (
	businessStartRow    = 1
	businessSeatsPerRow = 4
	economyStartRow     = 20
	economySeatsPerRow  = 6
	seatLetters         = "ABCDEF"
)

// SeatPools — упорядоченные свободные метки мест по классам.
// Живут только в рамках одного вызова генерации.
type SeatPools struct {
	Business []string
	Economy  []string
}

// BuildSeatPools строит пулы из схемы салона, синтезируя пустые классы по количеству мест.
// Метка принадлежит одному классу: при пересечении она остаётся в бизнесе,
// а синтезированный эконом добирает места следующими рядами.
func BuildSeatPools(plane model.PlaneType) SeatPools {
	layout := plane.SeatLayout.Data()

	business := dedupSeats(layout.Business, nil)
	if len(business) == 0 && plane.BusinessSeats > 0 {
		business = synthesizeSeats(plane.BusinessSeats, businessStartRow, businessSeatsPerRow, nil)
	}

	taken := make(map[string]struct{}, len(business))
	for _, s := range business {
		taken[s] = struct{}{}
	}

	economy := dedupSeats(layout.Economy, taken)
	if len(layout.Economy) == 0 && plane.EconomySeats > 0 {
		economy = synthesizeSeats(plane.EconomySeats, economyStartRow, economySeatsPerRow, taken)
	}

	return SeatPools{Business: business, Economy: economy}
}

// synthesizeSeats пропускает метки из taken.
func synthesizeSeats(count, startRow, perRow int, taken map[string]struct{}) []string {
	perRow = min(perRow, len(seatLetters))
	seats := make([]string, 0, count)
	for row := startRow; len(seats) < count; row++ {
		for _, letter := range seatLetters[:perRow] {
			if len(seats) == count {
				break
			}
			label := fmt.Sprintf("%d%c", row, letter)
			if _, ok := taken[label]; ok {
				continue
			}
			seats = append(seats, label)
		}
	}
	return seats
}

func dedupSeats(seats []string, taken map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(seats))
	out := make([]string, 0, len(seats))
	for _, s := range seats {
		if _, ok := seen[s]; ok {
			continue
		}
		if _, ok := taken[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (p *SeatPools) pool(c SeatClass) *[]string {
	if c == Business {
		return &p.Business
	}
	return &p.Economy
}

func (p SeatPools) clone() SeatPools {
	return SeatPools{
		Business: append([]string{}, p.Business...),
		Economy:  append([]string{}, p.Economy...),
	}
}

// remove вынимает место из обоих пулов.
func (p *SeatPools) remove(seat string) {
	for _, c := range []SeatClass{Business, Economy} {
		pool := p.pool(c)
		*pool = slices.DeleteFunc(*pool, func(s string) bool { return s == seat })
	}
}

// Layout: снимок остатков для payload.
func (p SeatPools) Layout() model.SeatLayout {
	c := p.clone()
	return model.SeatLayout{Business: c.Business, Economy: c.Economy}
}
