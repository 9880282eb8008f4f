package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/timeclock/internal/auth"
	employeeDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/employee"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCredentialsByEmail(ctx context.Context, email string) (*auth.Credentials, error) {
	var row employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auth.Credentials{
		EmployeeID:   row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
	}, nil
}
