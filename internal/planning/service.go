package planning

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/timeclock/internal"
	planningDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/planning"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]*planningDatamodel.Planning, error)
	GetByID(ctx context.Context, id int64) (*planningDatamodel.Planning, error)
	Create(ctx context.Context, p *planningDatamodel.Planning) error
	Update(ctx context.Context, p *planningDatamodel.Planning) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// EmployeeChecker confirms a referenced employee exists.
type EmployeeChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo      Repository
	employees EmployeeChecker
	logger    *slog.Logger
}

func NewService(repo Repository, employees EmployeeChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Planning, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list plannings", "error", err)
		return nil, internal.NewInternalError("failed to list plannings", err)
	}
	out := make([]*Planning, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDataModel(r))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, dto PlanningDTO) (*Planning, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureEmployee(ctx, dto.UserID); err != nil {
		return nil, err
	}

	p := &Planning{
		UserID:    dto.UserID,
		Date:      dto.Date,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Task:      dto.Task,
	}
	row := ToDataModel(p)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create planning", "error", err, "user_id", dto.UserID)
		return nil, internal.NewInternalError("failed to create planning", err)
	}

	s.logger.Info("planning created", "planning_id", row.ID, "user_id", row.UserID, "date", dto.Date)
	return FromDataModel(row), nil
}

func (s *Service) Update(ctx context.Context, id int64, dto PlanningDTO) (*Planning, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load planning", "error", err, "planning_id", id)
		return nil, internal.NewInternalError("failed to load planning", err)
	}
	if row == nil {
		return nil, internal.ErrPlanningNotFound
	}
	if err := s.ensureEmployee(ctx, dto.UserID); err != nil {
		return nil, err
	}

	p := FromDataModel(row)
	p.UserID = dto.UserID
	p.Date = dto.Date
	p.StartTime = dto.StartTime
	p.EndTime = dto.EndTime
	p.Task = dto.Task

	updated := ToDataModel(p)
	if err := s.repo.Update(ctx, updated); err != nil {
		s.logger.Error("failed to update planning", "error", err, "planning_id", id)
		return nil, internal.NewInternalError("failed to update planning", err)
	}

	s.logger.Info("planning updated", "planning_id", id)
	return FromDataModel(updated), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete planning", "error", err, "planning_id", id)
		return internal.NewInternalError("failed to delete planning", err)
	}
	if !deleted {
		return internal.ErrPlanningNotFound
	}
	s.logger.Info("planning deleted", "planning_id", id)
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
