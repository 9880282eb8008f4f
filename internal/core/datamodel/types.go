package datamodel

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar day persisted as DATE and carried as "2006-01-02".
type Date string

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format("2006-01-02"))
	case string:
		*d = Date(truncate(v, 10))
	case []byte:
		*d = Date(truncate(string(v), 10))
	default:
		return fmt.Errorf("datamodel: cannot scan %T into Date", src)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

// ClockTime is a time of day persisted as TIME and carried as "15:04:05".
type ClockTime string

func (t *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case time.Time:
		*t = ClockTime(v.Format("15:04:05"))
	case string:
		*t = ClockTime(truncate(v, 8))
	case []byte:
		*t = ClockTime(truncate(string(v), 8))
	default:
		return fmt.Errorf("datamodel: cannot scan %T into ClockTime", src)
	}
	return nil
}

func (t ClockTime) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
