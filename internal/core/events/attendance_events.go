package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePunchRecorded = "punch.recorded"
	EventTypePunchDeleted  = "punch.deleted"
)

type PunchRecordedEvent struct {
	BaseEvent
	PointageID int64  `json:"pointage_id"`
	EmployeeID int64  `json:"employee_id"`
	Kind       string `json:"type_pointage"`
	Date       string `json:"date_pointage"`
	Time       string `json:"heure_pointage"`
	Source     string `json:"source"`
}

func NewPunchRecordedEvent(pointageID, employeeID int64, kind, date, clock, source string) *PunchRecordedEvent {
	return &PunchRecordedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePunchRecorded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"pointage_id":    pointageID,
				"employee_id":    employeeID,
				"type_pointage":  kind,
				"date_pointage":  date,
				"heure_pointage": clock,
				"source":         source,
			},
		},
		PointageID: pointageID,
		EmployeeID: employeeID,
		Kind:       kind,
		Date:       date,
		Time:       clock,
		Source:     source,
	}
}

type PunchDeletedEvent struct {
	BaseEvent
	PointageID int64 `json:"pointage_id"`
	DeletedBy  int64 `json:"deleted_by"`
}

func NewPunchDeletedEvent(pointageID, deletedBy int64) *PunchDeletedEvent {
	return &PunchDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePunchDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"pointage_id": pointageID,
				"deleted_by":  deletedBy,
			},
		},
		PointageID: pointageID,
		DeletedBy:  deletedBy,
	}
}
