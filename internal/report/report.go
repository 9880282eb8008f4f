package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/report/export"
)

type Filter struct {
	EmployeeID int64
	Date       string
	Month      string
}

type SessionsResponse struct {
	Sessions          []attendance.Session `json:"sessions"`
	Summary           attendance.Summary   `json:"summary"`
	DroppedDepartures int                  `json:"dropped_departures"`
}

// Timesheet is one employee's sessions for a calendar month.
type Timesheet struct {
	EmployeeID   int64
	EmployeeName string
	Month        string
	Sessions     []attendance.Session
	Total        time.Duration
}

func (t *Timesheet) Sheet() export.Sheet {
	rows := make([]export.Row, 0, len(t.Sessions))
	for _, s := range t.Sessions {
		rows = append(rows, export.Row{
			Date:      s.Date,
			Arrival:   orMissing(s.EntryTime),
			Departure: orMissing(s.ExitTime),
			Duration:  sessionDuration(s),
			Status:    string(s.Status),
		})
	}
	return export.Sheet{
		Title:    fmt.Sprintf("Timesheet %s", t.Month),
		Subtitle: t.EmployeeName,
		Rows:     rows,
		Total:    attendance.FormatDuration(t.Total),
	}
}

func (t *Timesheet) Filename(f export.Format) string {
	return fmt.Sprintf("timesheet_%d_%s.%s", t.EmployeeID, t.Month, f.Extension())
}

func orMissing(s *string) string {
	if s == nil || *s == "" {
		return export.MissingValue
	}
	return *s
}

func sessionDuration(s attendance.Session) string {
	if s.DurationSeconds == nil {
		return export.MissingValue
	}
	return s.Duration
}

// sortChronologically orders sessions by day then entry time. Sessions
// without an entry sort last within their day.
func sortChronologically(sessions []attendance.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		switch {
		case a.EntryTime == nil:
			return false
		case b.EntryTime == nil:
			return true
		}
		return *a.EntryTime < *b.EntryTime
	})
}
