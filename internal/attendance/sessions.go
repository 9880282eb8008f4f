package attendance

import (
	"sort"
)

type sessionKey struct {
	employeeID int64
	date       string
}

// DeriveSessions pairs arrivals with the next departure of the same employee
// on the same day.
//
// An arrival while a session is already open emits the open one unchanged and
// opens a new one. A departure with no open session is returned in dropped and
// produces no session. Sessions still open at the end are emitted in the order
// they were opened.
func DeriveSessions(punches []Punch) (sessions []Session, dropped []Punch) {
	ordered := make([]Punch, len(punches))
	copy(ordered, punches)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})

	type pending struct {
		session *Session
		seq     int
	}
	open := make(map[sessionKey]pending)
	seq := 0

	for _, p := range ordered {
		key := sessionKey{employeeID: p.EmployeeID, date: p.Date}

		switch p.Kind {
		case Arrival:
			if cur, ok := open[key]; ok {
				sessions = append(sessions, finalize(*cur.session))
				delete(open, key)
			}
			entry := p.Time
			id := p.ID
			seq++
			open[key] = pending{seq: seq, session: &Session{
				EmployeeID:   p.EmployeeID,
				EmployeeName: p.EmployeeName,
				Date:         p.Date,
				EntryTime:    &entry,
				EntryID:      &id,
				Latitude:     p.Latitude,
				Longitude:    p.Longitude,
			}}
		case Departure:
			cur, ok := open[key]
			if !ok {
				dropped = append(dropped, p)
				continue
			}
			exit := p.Time
			id := p.ID
			cur.session.ExitTime = &exit
			cur.session.ExitID = &id
			sessions = append(sessions, finalize(*cur.session))
			delete(open, key)
		default:
			dropped = append(dropped, p)
		}
	}

	remaining := make([]pending, 0, len(open))
	for _, p := range open {
		remaining = append(remaining, p)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i].seq < remaining[j].seq })
	for _, p := range remaining {
		sessions = append(sessions, finalize(*p.session))
	}

	return sessions, dropped
}

func finalize(s Session) Session {
	s.Status = StatusPresent
	s.Duration = DurationUnavailable
	if s.EntryTime == nil || s.ExitTime == nil {
		return s
	}
	s.Status = StatusCompleted
	if d, ok := Duration(*s.EntryTime, *s.ExitTime); ok {
		secs := int64(d.Seconds())
		s.DurationSeconds = &secs
		s.Duration = FormatDuration(d)
	}
	return s
}
