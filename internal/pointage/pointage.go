package pointage

import (
	"time"

	"github.com/frahmantamala/timeclock/internal/attendance"
	pointageDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/pointage"
)

const (
	SourceManual = "manual"
	SourceQR     = "qr"
)

type Pointage struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Date       string    `json:"date_pointage"`
	Time       string    `json:"heure_pointage"`
	Type       string    `json:"type_pointage"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	LastName   string    `json:"nom,omitempty"`
	FirstName  string    `json:"prenom,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Filter narrows a listing. Zero values mean no constraint.
type Filter struct {
	EmployeeID int64
	Date       string
	Month      string
}

// Geo is the optional position captured with a punch.
type Geo struct {
	Latitude  *float64
	Longitude *float64
}

func FromDataModel(p *pointageDatamodel.Pointage) *Pointage {
	return &Pointage{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       string(p.Date),
		Time:       string(p.Time),
		Type:       p.Type,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		LastName:   p.LastName,
		FirstName:  p.FirstName,
		CreatedAt:  p.CreatedAt,
	}
}

func FromDataModels(rows []*pointageDatamodel.Pointage) []*Pointage {
	out := make([]*Pointage, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDataModel(r))
	}
	return out
}

// nextKind picks the kind an automatic punch should record given the
// punches already stored for the day. ok is false once the day is complete.
func nextKind(today []*pointageDatamodel.Pointage) (attendance.Kind, bool) {
	var arrived, left bool
	for _, p := range today {
		switch attendance.Kind(p.Type) {
		case attendance.Arrival:
			arrived = true
		case attendance.Departure:
			left = true
		}
	}
	switch {
	case !arrived:
		return attendance.Arrival, true
	case !left:
		return attendance.Departure, true
	}
	return "", false
}
