package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	rosterpb "github.com/Leganyst/flight-roster/internal/api/roster/v1"
	"github.com/Leganyst/flight-roster/internal/model"
	"github.com/Leganyst/flight-roster/internal/paging"
	"github.com/Leganyst/flight-roster/internal/repository"
	"github.com/Leganyst/flight-roster/internal/roster"
)

type RosterService struct {
	rosterpb.UnimplementedRosterServiceServer

	generator *roster.Generator
	userRepo  repository.UserRepository
	log       *slog.Logger
}

func NewRosterService(
	generator *roster.Generator,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterService{
		generator: generator,
		userRepo:  userRepo,
		log:       logger,
	}
}

// GenerateRoster строит новый ростер для рейса.
func (s *RosterService) GenerateRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flightID, err := uuidField(req, rosterpb.FieldFlightID)
	if err != nil {
		return nil, err
	}
	if flightID == uuid.Nil {
		return nil, status.Error(codes.InvalidArgument, "flight_id is required")
	}

	pilotIDs, err := uuidListField(req, rosterpb.FieldPilotIDs)
	if err != nil {
		return nil, err
	}
	cabinIDs, err := uuidListField(req, rosterpb.FieldCabinCrewIDs)
	if err != nil {
		return nil, err
	}

	createdBy, err := resolveOperator(ctx, s.userRepo, stringField(req, rosterpb.FieldCreatedBy))
	if err != nil {
		if errors.Is(err, ErrOperatorNotFound) {
			return nil, status.Errorf(codes.NotFound, "user %q not found", stringField(req, rosterpb.FieldCreatedBy))
		}
		return nil, status.Errorf(codes.Internal, "resolve created_by: %v", err)
	}

	agg, err := s.generator.Generate(ctx, roster.Request{
		FlightID:  flightID,
		Backend:   strings.TrimSpace(stringField(req, rosterpb.FieldBackend)),
		Pilots:    roster.Manual(pilotIDs...),
		CabinCrew: roster.Manual(cabinIDs...),
		CreatedBy: createdBy,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	doc, err := rosterDocument(agg)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode roster: %v", err)
	}
	return newStruct(map[string]any{rosterpb.FieldRoster: doc})
}

// GetRoster возвращает сохранённый ростер в виде экспортного документа.
func (s *RosterService) GetRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := uuidField(req, rosterpb.FieldRosterID)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, status.Error(codes.InvalidArgument, "roster_id is required")
	}

	agg, err := s.generator.Get(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}

	doc, err := rosterDocument(agg)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode roster: %v", err)
	}
	return newStruct(map[string]any{rosterpb.FieldRoster: doc})
}

// ListRosters отдаёт ростеры рейса (или всех рейсов без flight_id), новые первыми.
func (s *RosterService) ListRosters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	flightID, err := uuidField(req, rosterpb.FieldFlightID)
	if err != nil {
		return nil, err
	}

	page, size, limit, offset := paging.Window(intField(req, rosterpb.FieldPage), intField(req, rosterpb.FieldPageSize))

	rosters, total, err := s.generator.List(ctx, flightID, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list rosters: %v", err)
	}

	p := paging.NewPage(rosters, page, size, total)
	items := make([]any, 0, len(p.Items))
	for _, r := range p.Items {
		items = append(items, rosterSummary(r))
	}

	return newStruct(map[string]any{
		rosterpb.FieldRosters:  items,
		rosterpb.FieldTotal:    p.Total,
		rosterpb.FieldPage:     p.Page,
		rosterpb.FieldPageSize: p.PageSize,
		"has_next":             p.HasNext,
		"has_prev":             p.HasPrev,
	})
}

// toStatus переводит ошибки генератора в коды gRPC.
func toStatus(err error) error {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, roster.ErrConstraintViolation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, roster.ErrGenerationInProgress):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Errorf(codes.Internal, "roster: %v", err)
	}
}

func rosterSummary(r model.Roster) map[string]any {
	out := map[string]any{
		"id":         r.ID.String(),
		"flight_id":  r.FlightID.String(),
		"backend":    r.Backend,
		"created_at": formatTime(r.CreatedAt),
		"created_by": nil,
	}
	if r.Flight != nil {
		out["flight_number"] = r.Flight.FlightNumber
	}
	if r.CreatedByID != nil {
		out["created_by"] = r.CreatedByID.String()
	}
	return out
}

// rosterDocument — экспортный вид: рейс, экипаж с ролями, пассажиры с местами и контактами.
func rosterDocument(agg *roster.Aggregate) (map[string]any, error) {
	doc := rosterSummary(agg.Roster)

	payload, err := payloadMap(agg.Roster.Payload.Data())
	if err != nil {
		return nil, err
	}
	doc[rosterpb.FieldPayload] = payload

	if f := agg.Roster.Flight; f != nil {
		doc[rosterpb.FieldFlight] = flightDocument(f)
	}

	crew := make([]any, 0, len(agg.Crew))
	for _, c := range agg.Crew {
		crew = append(crew, crewDocument(c))
	}
	doc[rosterpb.FieldCrew] = crew

	passengers := make([]any, 0, len(agg.Passengers))
	for _, p := range agg.Passengers {
		passengers = append(passengers, passengerDocument(p))
	}
	doc[rosterpb.FieldPassengers] = passengers

	return doc, nil
}

func flightDocument(f *model.Flight) map[string]any {
	out := map[string]any{
		"id":             f.ID.String(),
		"flight_number":  f.FlightNumber,
		"departure_time": formatTime(f.DepartureTime),
		"arrival_time":   formatTime(f.ArrivalTime),
		"status":         string(f.Status),
		"origin":         nil,
		"destination":    nil,
		"plane_type":     nil,
		"distance_km":    nil,
	}
	if f.OriginAirport != nil {
		out["origin"] = f.OriginAirport.Code
	}
	if f.DestinationAirport != nil {
		out["destination"] = f.DestinationAirport.Code
	}
	if f.PlaneType != nil {
		out["plane_type"] = f.PlaneType.Code
	}
	if f.DistanceKm != nil {
		out["distance_km"] = *f.DistanceKm
	}
	return out
}

func crewDocument(c roster.CrewAssignment) map[string]any {
	out := map[string]any{
		"type":      string(c.Type()),
		"member_id": c.MemberID().String(),
		"role":      c.Role(),
	}
	switch a := c.(type) {
	case roster.PilotAssignment:
		out["code"] = a.Pilot.Code
		out["name"] = a.Pilot.FullName()
		out["seniority"] = string(a.Pilot.Seniority)
	case roster.CabinAssignment:
		out["code"] = a.Member.Code
		out["name"] = a.Member.FullName()
		out["seniority"] = string(a.Member.Seniority)
	}
	return out
}

func passengerDocument(a model.RosterPassengerAssignment) map[string]any {
	out := map[string]any{
		"passenger_id":   a.PassengerID.String(),
		"seat":           nil,
		"seat_type":      a.SeatType,
		"infant":         a.IsInfant,
		"class_fallback": a.ClassFallback,
	}
	if a.SeatNumber != nil {
		out["seat"] = *a.SeatNumber
	}
	if p := a.Passenger; p != nil {
		out["name"] = p.FullName()
		out["email"] = p.Email
		out["phone"] = p.Phone
		out["passport_number"] = p.PassportNumber
	}
	return out
}

// payloadMap приводит снимок к map, который понимает structpb.
func payloadMap(p model.RosterPayload) (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return s, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func intField(req *structpb.Struct, name string) int {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0
	}
	switch v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := v.GetNumberValue()
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(max(min(n, math.MaxInt32), math.MinInt32))
	case *structpb.Value_StringValue:
		var n int
		if _, err := fmt.Sscan(v.GetStringValue(), &n); err == nil {
			return n
		}
	}
	return 0
}

// uuidField: отсутствующее или пустое поле даёт uuid.Nil.
func uuidField(req *structpb.Struct, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(stringField(req, name))
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", name)
	}
	return id, nil
}

func uuidListField(req *structpb.Struct, name string) ([]uuid.UUID, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, nil
	}
	list := v.GetListValue()
	if list == nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a list of UUIDs", name)
	}

	ids := make([]uuid.UUID, 0, len(list.GetValues()))
	for i, item := range list.GetValues() {
		id, err := uuid.Parse(strings.TrimSpace(item.GetStringValue()))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s[%d] must be a UUID", name, i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
