package employee

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/auth"
	employeeDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/employee"
)

// Repository reports a missing row as nil, nil. Create and Update return
// internal.ErrEmailTaken on a duplicate email.
type Repository interface {
	List(ctx context.Context) ([]*employeeDatamodel.Employee, error)
	GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error)
	Create(ctx context.Context, e *employeeDatamodel.Employee) error
	Update(ctx context.Context, e *employeeDatamodel.Employee) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
	badges     *BadgeRenderer
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, badges *BadgeRenderer, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		badges:     badges,
		logger:     logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return FromDataModels(rows), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) load(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to load employee", err)
	}
	if row == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return row, nil
}

// Create stores a new employee. When no password is supplied a random one is
// generated and returned in the response; it is never stored in clear.
func (s *Service) Create(ctx context.Context, dto EmployeeDTO) (*CreateEmployeeResponse, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	password := dto.Password
	issued := ""
	if password == "" {
		generated, err := auth.GenerateInitialPassword()
		if err != nil {
			return nil, internal.NewInternalError("failed to generate password", err)
		}
		password = generated
		issued = generated
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	role := dto.Role
	if role == "" {
		role = auth.RoleEmployee
	}

	row := &employeeDatamodel.Employee{
		LastName:     dto.LastName,
		FirstName:    dto.FirstName,
		Email:        dto.Email,
		Position:     dto.Position,
		Phone:        dto.Phone,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to create employee", "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", row.ID, "role", row.Role, "password_issued", issued != "")
	return &CreateEmployeeResponse{Employee: FromDataModel(row), InitialPassword: issued}, nil
}

// Update replaces the profile fields. The password changes only when a new
// one is supplied and the role only when one is given.
func (s *Service) Update(ctx context.Context, id int64, dto EmployeeDTO) (*Employee, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	row.LastName = dto.LastName
	row.FirstName = dto.FirstName
	row.Email = dto.Email
	row.Position = dto.Position
	row.Phone = dto.Phone
	if dto.Role != "" {
		row.Role = dto.Role
	}
	if dto.Password != "" {
		hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		row.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, row); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to update employee", err)
	}

	s.logger.Info("employee updated", "employee_id", id, "password_changed", dto.Password != "")
	return FromDataModel(row), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return internal.NewInternalError("failed to delete employee", err)
	}
	if !deleted {
		return internal.ErrEmployeeNotFound
	}
	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

// Exists reports whether an employee row is present.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

// Badge renders the QR code for the employee's personal punch link.
func (s *Service) Badge(ctx context.Context, id int64) ([]byte, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}
	png, err := s.badges.Render(id)
	if err != nil {
		s.logger.Error("failed to render badge", "error", err, "employee_id", id)
		return nil, internal.NewInternalError("failed to render badge", err)
	}
	return png, nil
}
