// Package attendance pairs raw punches into work sessions and aggregates them.
// Everything here is a pure transform over already-loaded punches.
package attendance

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	Arrival   Kind = "arrivee"
	Departure Kind = "depart"
)

// ParseKind accepts the canonical kinds plus accented and English spellings.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arrivee", "arrivée", "arrival":
		return Arrival, nil
	case "depart", "départ", "departure":
		return Departure, nil
	}
	return "", fmt.Errorf("unknown punch type %q", s)
}

type Punch struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Date         string
	Time         string
	Kind         Kind
	Latitude     *float64
	Longitude    *float64
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPresent   Status = "present"
)

// DurationUnavailable is the text rendered when a session has no usable duration.
const DurationUnavailable = "unavailable"

type Session struct {
	EmployeeID      int64    `json:"employee_id"`
	EmployeeName    string   `json:"employee_name,omitempty"`
	Date            string   `json:"date"`
	EntryTime       *string  `json:"entry_time"`
	ExitTime        *string  `json:"exit_time"`
	EntryID         *int64   `json:"entry_id,omitempty"`
	ExitID          *int64   `json:"exit_id,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	DurationSeconds *int64   `json:"duration_seconds"`
	Duration        string   `json:"duration"`
	Status          Status   `json:"status"`
}

func (s Session) HasEntry() bool {
	return s.EntryTime != nil
}

func (s Session) IsComplete() bool {
	return s.EntryTime != nil && s.ExitTime != nil
}

// Worked returns the positive duration of a complete session.
func (s Session) Worked() (time.Duration, bool) {
	if s.DurationSeconds == nil || *s.DurationSeconds <= 0 {
		return 0, false
	}
	return time.Duration(*s.DurationSeconds) * time.Second, true
}

func parseClock(s string) (time.Duration, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}

// Duration is the clock difference exit - entry. A negative or unparseable
// difference reports ok=false.
func Duration(entry, exit string) (time.Duration, bool) {
	start, ok := parseClock(entry)
	if !ok {
		return 0, false
	}
	end, ok := parseClock(exit)
	if !ok {
		return 0, false
	}
	if end < start {
		return 0, false
	}
	return end - start, true
}

// FormatDuration renders d as 8h30m00s.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
