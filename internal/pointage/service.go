package pointage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/core/datamodel"
	pointageDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/pointage"
	"github.com/frahmantamala/timeclock/internal/core/events"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]*pointageDatamodel.Pointage, error)
	// ListForDay returns one employee's punches for a day in ascending time.
	ListForDay(ctx context.Context, employeeID int64, date string) ([]*pointageDatamodel.Pointage, error)
	// Create returns internal.ErrPunchAlreadyRecorded when the
	// (employee, day, kind) slot is taken.
	Create(ctx context.Context, p *pointageDatamodel.Pointage) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo      Repository
	employees EmployeeChecker
	clock     internal.Clock
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo Repository, employees EmployeeChecker, clock internal.Clock, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

// Record stores a punch of the given kind stamped with the current business
// time. A second punch of the same kind on the same day is rejected by the
// storage constraint.
func (s *Service) Record(ctx context.Context, employeeID int64, kind attendance.Kind, geo Geo) (*Pointage, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if kind != attendance.Arrival && kind != attendance.Departure {
		return nil, internal.NewValidationFieldError("type_pointage", "type_pointage must be arrivee or depart", internal.ErrCodeInvalidPunchType)
	}
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.insert(ctx, employeeID, kind, geo, SourceManual)
}

// RecordAuto infers the kind from today's punches: arrival first, then
// departure, then nothing more for the day.
func (s *Service) RecordAuto(ctx context.Context, employeeID int64, geo Geo) (*Pointage, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	today, err := s.repo.ListForDay(ctx, employeeID, internal.Today(s.clock))
	if err != nil {
		s.logger.Error("failed to load today's punches", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to load today's punches", err)
	}
	kind, ok := nextKind(today)
	if !ok {
		return nil, internal.ErrPunchCycleComplete
	}
	return s.insert(ctx, employeeID, kind, geo, SourceQR)
}

func (s *Service) insert(ctx context.Context, employeeID int64, kind attendance.Kind, geo Geo, source string) (*Pointage, error) {
	now := s.clock.Now()
	row := &pointageDatamodel.Pointage{
		EmployeeID: employeeID,
		Date:       datamodel.Date(now.Format(internal.DateLayout)),
		Time:       datamodel.ClockTime(now.Format(internal.TimeLayout)),
		Type:       string(kind),
		Latitude:   geo.Latitude,
		Longitude:  geo.Longitude,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, internal.ErrPunchAlreadyRecorded) {
			s.logger.Warn("punch already recorded", "employee_id", employeeID, "type_pointage", kind, "date", row.Date)
			return nil, internal.ErrPunchAlreadyRecorded
		}
		s.logger.Error("failed to record punch", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to record punch", err)
	}

	s.logger.Info("punch recorded",
		"pointage_id", row.ID,
		"employee_id", employeeID,
		"type_pointage", kind,
		"source", source)

	s.publish(ctx, events.NewPunchRecordedEvent(row.ID, employeeID, row.Type, string(row.Date), string(row.Time), source))
	return FromDataModel(row), nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Pointage, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list punches", "error", err)
		return nil, internal.NewInternalError("failed to list punches", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]*Pointage, error) {
	return s.List(ctx, Filter{EmployeeID: employeeID})
}

func (s *Service) ListToday(ctx context.Context, employeeID int64) ([]*Pointage, error) {
	rows, err := s.repo.ListForDay(ctx, employeeID, internal.Today(s.clock))
	if err != nil {
		s.logger.Error("failed to list today's punches", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to list today's punches", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete punch", "error", err, "pointage_id", id)
		return internal.NewInternalError("failed to delete punch", err)
	}
	if !deleted {
		return internal.ErrPointageNotFound
	}

	var by int64
	if u, ok := auth.UserFromContext(ctx); ok && u != nil {
		by = u.ID
	}
	s.logger.Info("punch deleted", "pointage_id", id, "deleted_by", by)
	s.publish(ctx, events.NewPunchDeletedEvent(id, by))
	return nil
}

func (s *Service) ensureEmployee(ctx context.Context, id int64) error {
	ok, err := s.employees.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check employee", "error", err, "employee_id", id)
		return internal.NewInternalError("failed to check employee", err)
	}
	if !ok {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Error("failed to publish event", "event_type", e.EventType(), "error", err)
	}
}
