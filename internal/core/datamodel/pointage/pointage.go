package pointage

import (
	"time"

	"github.com/frahmantamala/timeclock/internal/core/datamodel"
)

const (
	TypeArrival   = "arrivee"
	TypeDeparture = "depart"
)

type Pointage struct {
	ID         int64               `gorm:"primaryKey"`
	EmployeeID int64               `gorm:"column:employee_id;not null;uniqueIndex:uq_pointages_employee_day_type,priority:1"`
	Date       datamodel.Date      `gorm:"column:date_pointage;type:date;not null;uniqueIndex:uq_pointages_employee_day_type,priority:2"`
	Time       datamodel.ClockTime `gorm:"column:heure_pointage;type:time;not null"`
	Type       string              `gorm:"column:type_pointage;not null;uniqueIndex:uq_pointages_employee_day_type,priority:3"`
	Latitude   *float64            `gorm:"column:latitude"`
	Longitude  *float64            `gorm:"column:longitude"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`

	// populated by joined reads only
	LastName  string `gorm:"column:nom;->;-:migration"`
	FirstName string `gorm:"column:prenom;->;-:migration"`
}

func (Pointage) TableName() string {
	return "pointages"
}
