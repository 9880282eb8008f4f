package pointage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/core/common/validation"
)

// EmployeeID decodes from either a JSON number or a numeric string; QR
// scanners post the id as it appears in the badge URL.
type EmployeeID int64

func (id *EmployeeID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
		if len(b) == 0 {
			*id = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("employee_id: %w", err)
	}
	*id = EmployeeID(n)
	return nil
}

type PunchDTO struct {
	EmployeeID EmployeeID `json:"employee_id"`
	Type       string     `json:"type_pointage"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
}

func (d PunchDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", int64(d.EmployeeID)).Required()
	v.Field("type_pointage", d.Type).Required().Custom(func(value interface{}) *internal.AppError {
		s, _ := value.(string)
		if _, err := attendance.ParseKind(s); err != nil {
			return internal.NewValidationFieldError("type_pointage", "type_pointage must be arrivee or depart", internal.ErrCodeInvalidPunchType)
		}
		return nil
	})
	geoFields(v, d.Latitude, d.Longitude)
	return v.Validate()
}

func (d PunchDTO) Geo() Geo {
	return Geo{Latitude: d.Latitude, Longitude: d.Longitude}
}

type QRPunchDTO struct {
	EmployeeID EmployeeID `json:"employee_id"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
}

func (d QRPunchDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("employee_id", int64(d.EmployeeID)).Required()
	geoFields(v, d.Latitude, d.Longitude)
	return v.Validate()
}

func (d QRPunchDTO) Geo() Geo {
	return Geo{Latitude: d.Latitude, Longitude: d.Longitude}
}

func (g Geo) Validate() *internal.AppError {
	v := validation.NewValidator()
	geoFields(v, g.Latitude, g.Longitude)
	return v.Validate()
}

func geoFields(v *validation.ValidationBuilder, lat, lng *float64) {
	v.Field("latitude", lat).Between(-90, 90, internal.ErrCodeInvalidLocation)
	v.Field("longitude", lng).Between(-180, 180, internal.ErrCodeInvalidLocation)
}

func (f Filter) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("date", f.Date).Date()
	v.Field("month", f.Month).Month()
	return v.Validate()
}

type PointagesResponse struct {
	Pointages []*Pointage `json:"pointages"`
}
