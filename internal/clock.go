package internal

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04:05"
	MonthLayout = "2006-01"
)

// Clock reports the current instant in the business timezone.
type Clock interface {
	Now() time.Time
}

type zoneClock struct {
	loc *time.Location
}

func (c zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// NewClock returns a clock pinned to the named IANA zone.
func NewClock(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return zoneClock{loc: loc}, nil
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

// Today formats the clock's current date.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// MonthBounds returns the first day of month and the first day of the
// following month, both as YYYY-MM-DD, for half-open range filters.
func MonthBounds(month string) (string, string, error) {
	start, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", "", err
	}
	return start.Format(DateLayout), start.AddDate(0, 1, 0).Format(DateLayout), nil
}
