package employee

import (
	"strings"
	"time"

	employeeDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/employee"
)

type Employee struct {
	ID        int64     `json:"id"`
	LastName  string    `json:"nom"`
	FirstName string    `json:"prenom"`
	Email     string    `json:"email"`
	Position  string    `json:"poste"`
	Phone     string    `json:"telephone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) DisplayName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:        e.ID,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		Email:     e.Email,
		Position:  e.Position,
		Phone:     e.Phone,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromDataModels(rows []*employeeDatamodel.Employee) []*Employee {
	out := make([]*Employee, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDataModel(r))
	}
	return out
}
