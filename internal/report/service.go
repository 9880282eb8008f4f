package report

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/core/common/validation"
)

// Repository is the read side over punches joined with employee names.
type Repository interface {
	Punches(ctx context.Context, f Filter) ([]attendance.Punch, error)
	// EmployeeName returns ok=false when the employee does not exist.
	EmployeeName(ctx context.Context, id int64) (string, bool, error)
}

type Service struct {
	repo   Repository
	clock  internal.Clock
	logger *slog.Logger
}

func NewService(repo Repository, clock internal.Clock, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (f Filter) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("date", f.Date).Date()
	v.Field("month", f.Month).Month()
	return v.Validate()
}

// Sessions derives sessions and their summary for the filtered punches.
func (s *Service) Sessions(ctx context.Context, f Filter) (*SessionsResponse, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	punches, err := s.repo.Punches(ctx, f)
	if err != nil {
		s.logger.Error("failed to load punches", "error", err)
		return nil, internal.NewInternalError("failed to load punches", err)
	}

	sessions, dropped := attendance.DeriveSessions(punches)
	if len(dropped) > 0 {
		s.logger.Debug("departures without arrival dropped", "count", len(dropped))
	}
	if sessions == nil {
		sessions = []attendance.Session{}
	}

	return &SessionsResponse{
		Sessions:          sessions,
		Summary:           attendance.Summarize(sessions),
		DroppedDepartures: len(dropped),
	}, nil
}

// Timesheet builds the monthly timesheet of one employee. An empty month
// means the current month in the business timezone.
func (s *Service) Timesheet(ctx context.Context, employeeID int64, month string) (*Timesheet, error) {
	if month == "" {
		month = s.clock.Now().Format(internal.MonthLayout)
	}
	f := Filter{EmployeeID: employeeID, Month: month}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	name, ok, err := s.repo.EmployeeName(ctx, employeeID)
	if err != nil {
		s.logger.Error("failed to load employee", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to load employee", err)
	}
	if !ok {
		return nil, internal.ErrEmployeeNotFound
	}

	punches, err := s.repo.Punches(ctx, f)
	if err != nil {
		s.logger.Error("failed to load punches", "error", err, "employee_id", employeeID)
		return nil, internal.NewInternalError("failed to load punches", err)
	}

	sessions, _ := attendance.DeriveSessions(punches)
	sortChronologically(sessions)

	return &Timesheet{
		EmployeeID:   employeeID,
		EmployeeName: name,
		Month:        month,
		Sessions:     sessions,
		Total:        attendance.TotalWorked(sessions),
	}, nil
}
