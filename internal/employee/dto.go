package employee

import (
	"strings"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/core/common/validation"
)

// EmployeeDTO is accepted by both create and update. Password is optional in
// both: on create a random one is issued, on update the stored hash is kept.
type EmployeeDTO struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Position  string `json:"poste"`
	Phone     string `json:"telephone"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (d *EmployeeDTO) Normalize() {
	d.LastName = strings.TrimSpace(d.LastName)
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Position = strings.TrimSpace(d.Position)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Role = strings.ToLower(strings.TrimSpace(d.Role))
}

func (d EmployeeDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("nom", d.LastName).Required().MaxLength(100)
	v.Field("prenom", d.FirstName).Required().MaxLength(100)
	v.Field("email", d.Email).Required().Email().MaxLength(255)
	v.Field("poste", d.Position).MaxLength(100)
	v.Field("telephone", d.Phone).MaxLength(30)
	v.Field("password", d.Password).MinLength(8).MaxLength(72)
	v.Field("role", d.Role).OneOf(internal.ErrCodeInvalidRole, auth.RoleAdmin, auth.RoleEmployee)
	return v.Validate()
}

// CreateEmployeeResponse carries the generated password exactly once.
type CreateEmployeeResponse struct {
	*Employee
	InitialPassword string `json:"initial_password,omitempty"`
}

type EmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}
