package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/timeclock/internal"
	pointageDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/pointage"
	"github.com/frahmantamala/timeclock/internal/pointage"
	"gorm.io/gorm"
)

type PointageRepository struct {
	db *gorm.DB
}

func NewPointageRepository(db *gorm.DB) pointage.Repository {
	return &PointageRepository{db: db}
}

func (r *PointageRepository) List(ctx context.Context, f pointage.Filter) ([]*pointageDatamodel.Pointage, error) {
	q := r.db.WithContext(ctx).
		Model(&pointageDatamodel.Pointage{}).
		Select("pointages.*, employees.nom, employees.prenom").
		Joins("JOIN employees ON employees.id = pointages.employee_id")

	if f.EmployeeID != 0 {
		q = q.Where("pointages.employee_id = ?", f.EmployeeID)
	}
	if f.Date != "" {
		q = q.Where("pointages.date_pointage = ?", f.Date)
	}
	if f.Month != "" {
		start, end, err := internal.MonthBounds(f.Month)
		if err != nil {
			return nil, err
		}
		q = q.Where("pointages.date_pointage >= ? AND pointages.date_pointage < ?", start, end)
	}

	var rows []*pointageDatamodel.Pointage
	err := q.Order("pointages.date_pointage DESC, pointages.heure_pointage DESC, pointages.id DESC").Find(&rows).Error
	return rows, err
}

func (r *PointageRepository) ListForDay(ctx context.Context, employeeID int64, date string) ([]*pointageDatamodel.Pointage, error) {
	var rows []*pointageDatamodel.Pointage
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date_pointage = ?", employeeID, date).
		Order("heure_pointage ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PointageRepository) Create(ctx context.Context, p *pointageDatamodel.Pointage) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return internal.ErrPunchAlreadyRecorded
	}
	return err
}

func (r *PointageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&pointageDatamodel.Pointage{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
