package planning

import (
	"time"

	"github.com/frahmantamala/timeclock/internal/core/datamodel"
)

type Planning struct {
	ID        int64               `gorm:"primaryKey"`
	UserID    int64               `gorm:"column:user_id;not null;index"`
	Date      datamodel.Date      `gorm:"column:date;type:date;not null"`
	StartTime datamodel.ClockTime `gorm:"column:start_time;type:time;not null"`
	EndTime   datamodel.ClockTime `gorm:"column:end_time;type:time;not null"`
	Task      string              `gorm:"column:task"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`

	// populated by joined reads only
	LastName  string `gorm:"column:nom;->;-:migration"`
	FirstName string `gorm:"column:prenom;->;-:migration"`
}

func (Planning) TableName() string {
	return "plannings"
}
