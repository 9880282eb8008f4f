package planning

import (
	"time"

	"github.com/frahmantamala/timeclock/internal/core/datamodel"
	planningDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/planning"
)

type Planning struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Task      string    `json:"task"`
	LastName  string    `json:"nom,omitempty"`
	FirstName string    `json:"prenom,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows a listing. Zero values mean no constraint.
type Filter struct {
	UserID int64
	Date   string
	Month  string
}

func ToDataModel(p *Planning) *planningDatamodel.Planning {
	return &planningDatamodel.Planning{
		ID:        p.ID,
		UserID:    p.UserID,
		Date:      datamodel.Date(p.Date),
		StartTime: datamodel.ClockTime(p.StartTime),
		EndTime:   datamodel.ClockTime(p.EndTime),
		Task:      p.Task,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromDataModel(p *planningDatamodel.Planning) *Planning {
	return &Planning{
		ID:        p.ID,
		UserID:    p.UserID,
		Date:      string(p.Date),
		StartTime: string(p.StartTime),
		EndTime:   string(p.EndTime),
		Task:      p.Task,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
