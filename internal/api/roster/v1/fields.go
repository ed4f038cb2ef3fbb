package rosterv1

// Поля запросов.
const (
	FieldFlightID     = "flight_id"
	FieldBackend      = "backend"
	FieldPilotIDs     = "pilot_ids"
	FieldCabinCrewIDs = "cabin_crew_ids"
	FieldCreatedBy    = "created_by"
	FieldRosterID     = "roster_id"
	FieldPage         = "page"
	FieldPageSize     = "page_size"
)

// Поля ответов.
const (
	FieldRoster     = "roster"
	FieldRosters    = "rosters"
	FieldTotal      = "total"
	FieldFlight     = "flight"
	FieldCrew       = "crew"
	FieldPassengers = "passengers"
	FieldPayload    = "payload"
)
