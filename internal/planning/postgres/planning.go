package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/timeclock/internal"
	planningDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/planning"
	"github.com/frahmantamala/timeclock/internal/planning"
	"gorm.io/gorm"
)

type PlanningRepository struct {
	db *gorm.DB
}

func NewPlanningRepository(db *gorm.DB) planning.Repository {
	return &PlanningRepository{db: db}
}

func (r *PlanningRepository) List(ctx context.Context, f planning.Filter) ([]*planningDatamodel.Planning, error) {
	q := r.db.WithContext(ctx).
		Model(&planningDatamodel.Planning{}).
		Select("plannings.*, employees.nom, employees.prenom").
		Joins("JOIN employees ON employees.id = plannings.user_id")

	if f.UserID != 0 {
		q = q.Where("plannings.user_id = ?", f.UserID)
	}
	if f.Date != "" {
		q = q.Where("plannings.date = ?", f.Date)
	}
	if f.Month != "" {
		start, end, err := internal.MonthBounds(f.Month)
		if err != nil {
			return nil, err
		}
		q = q.Where("plannings.date >= ? AND plannings.date < ?", start, end)
	}

	var rows []*planningDatamodel.Planning
	err := q.Order("plannings.date ASC, plannings.start_time ASC, plannings.id ASC").Find(&rows).Error
	return rows, err
}

func (r *PlanningRepository) GetByID(ctx context.Context, id int64) (*planningDatamodel.Planning, error) {
	var row planningDatamodel.Planning
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *PlanningRepository) Create(ctx context.Context, p *planningDatamodel.Planning) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PlanningRepository) Update(ctx context.Context, p *planningDatamodel.Planning) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PlanningRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&planningDatamodel.Planning{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
