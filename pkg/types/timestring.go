package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

// TimeString represents a time of day in "HH:MM" form.
// Seconds and finer precision are always truncated: the database may store
// pickup times as "13:00:00", slot math only ever works at minute granularity.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only hour and minute.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS" into a normalized TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(timeLayoutSeconds, s); err == nil {
		return NewTimeString(t), nil
	}
	return "", fmt.Errorf("types: invalid time %q, expected HH:MM", s)
}

// MustTimeString is NewTimeStringFromString that panics on malformed input.
// Intended for constants and tests.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the TimeString is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) parse() (time.Time, error) {
	return time.Parse(timeLayout, string(t))
}

// Minutes returns the time of day as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, fmt.Errorf("types: Minutes - parse %q: %w", t, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the TimeString shifted forward by the given number of minutes.
// The result wraps within a single day; there is no overflow into the next date.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", fmt.Errorf("types: AddMinutes - parse %q: %w", t, err)
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// Value implements driver.Valuer so TimeString can be written to a TIME column.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as time.Time
// via lib/pq, text values as string or []byte; all are normalized to HH:MM.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}
