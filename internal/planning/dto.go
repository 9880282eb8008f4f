package planning

import (
	"strings"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/core/common/validation"
)

type PlanningDTO struct {
	UserID    int64  `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Task      string `json:"task"`
}

// Normalize trims input and pads HH:MM times to HH:MM:SS when they parse.
func (d *PlanningDTO) Normalize() {
	d.Date = strings.TrimSpace(d.Date)
	d.Task = strings.TrimSpace(d.Task)
	if t, err := validation.NormalizeClock(d.StartTime); err == nil {
		d.StartTime = t
	}
	if t, err := validation.NormalizeClock(d.EndTime); err == nil {
		d.EndTime = t
	}
}

func (d PlanningDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("user_id", d.UserID).Required()
	v.Field("date", d.Date).Required().Date()
	v.Field("start_time", d.StartTime).Required().ClockTime()
	v.Field("end_time", d.EndTime).Required().ClockTime()
	v.Field("task", d.Task).MaxLength(255)
	if err := v.Validate(); err != nil {
		return err
	}

	// both normalized to HH:MM:SS, so string order is clock order
	if d.StartTime >= d.EndTime {
		return internal.NewValidationFieldError("end_time", "start_time must be before end_time", internal.ErrCodeInvalidTimeRange)
	}
	return nil
}

func (f Filter) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("date", f.Date).Date()
	v.Field("month", f.Month).Month()
	return v.Validate()
}

type PlanningsResponse struct {
	Plannings []*Planning `json:"plannings"`
}
