// Package queue описывает события, которые сервис отправляет в брокер, и их публикацию.
package queue

// RosterGeneratedQueue — очередь событий о созданных ростерах.
const RosterGeneratedQueue = "roster.generated"

// RosterGeneratedEvent отправляется после коммита нового ростера.
// Содержит сводку, достаточную потребителям без запроса к базе.
type RosterGeneratedEvent struct {
	RosterID       string `json:"roster_id"`
	FlightID       string `json:"flight_id"`
	FlightNumber   string `json:"flight_number"`
	Backend        string `json:"backend"`
	Pilots         int    `json:"pilots"`
	CabinCrew      int    `json:"cabin_crew"`
	Passengers     int    `json:"passengers"`
	ClassFallbacks int    `json:"class_fallbacks"`
	CreatedBy      string `json:"created_by,omitempty"`
	GeneratedAt    string `json:"generated_at"`
}
