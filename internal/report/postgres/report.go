package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/core/datamodel"
	"github.com/frahmantamala/timeclock/internal/report"
	"github.com/jmoiron/sqlx"
)

// ReadRepository serves the session read model with plain SQL over sqlx.
type ReadRepository struct {
	db *sqlx.DB
}

func NewReadRepository(db *sqlx.DB) report.Repository {
	return &ReadRepository{db: db}
}

type punchRow struct {
	ID         int64               `db:"id"`
	EmployeeID int64               `db:"employee_id"`
	Date       datamodel.Date      `db:"date_pointage"`
	Time       datamodel.ClockTime `db:"heure_pointage"`
	Type       string              `db:"type_pointage"`
	Latitude   *float64            `db:"latitude"`
	Longitude  *float64            `db:"longitude"`
	LastName   string              `db:"nom"`
	FirstName  string              `db:"prenom"`
}

const punchesQuery = `
SELECT p.id, p.employee_id, p.date_pointage, p.heure_pointage, p.type_pointage,
       p.latitude, p.longitude, e.nom, e.prenom
FROM pointages p
JOIN employees e ON e.id = p.employee_id`

func (r *ReadRepository) Punches(ctx context.Context, f report.Filter) ([]attendance.Punch, error) {
	var (
		where []string
		args  []interface{}
	)
	if f.EmployeeID != 0 {
		where = append(where, "p.employee_id = ?")
		args = append(args, f.EmployeeID)
	}
	if f.Date != "" {
		where = append(where, "p.date_pointage = ?")
		args = append(args, f.Date)
	}
	if f.Month != "" {
		start, end, err := internal.MonthBounds(f.Month)
		if err != nil {
			return nil, err
		}
		where = append(where, "p.date_pointage >= ? AND p.date_pointage < ?")
		args = append(args, start, end)
	}

	query := punchesQuery
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	query += "\nORDER BY p.employee_id, p.date_pointage, p.heure_pointage, p.id"

	var rows []punchRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	punches := make([]attendance.Punch, 0, len(rows))
	for _, row := range rows {
		punches = append(punches, attendance.Punch{
			ID:           row.ID,
			EmployeeID:   row.EmployeeID,
			EmployeeName: strings.TrimSpace(row.FirstName + " " + row.LastName),
			Date:         string(row.Date),
			Time:         string(row.Time),
			Kind:         attendance.Kind(row.Type),
			Latitude:     row.Latitude,
			Longitude:    row.Longitude,
		})
	}
	return punches, nil
}

func (r *ReadRepository) EmployeeName(ctx context.Context, id int64) (string, bool, error) {
	var row struct {
		LastName  string `db:"nom"`
		FirstName string `db:"prenom"`
	}
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT nom, prenom FROM employees WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return strings.TrimSpace(row.FirstName + " " + row.LastName), true, nil
}
