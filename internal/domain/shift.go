package domain

import (
	"fmt"
	"time"
)

const (
	DateFormat    = "2006-01-02"
	clock24Format = "15:04"
	clock12Format = "03:04 PM"
)

// Clock is a time of day without a date.
type Clock struct {
	Hour   int
	Minute int
}

func NewClock(hour, minute int) *Clock {
	return &Clock{Hour: hour, Minute: minute}
}

func (c Clock) asTime() time.Time {
	return time.Date(0, time.January, 1, c.Hour, c.Minute, 0, 0, time.UTC)
}

// String renders the clock the way timesheet fields show it, e.g. "09:30 AM".
func (c Clock) String() string {
	return c.asTime().Format(clock12Format)
}

// Format24 renders the clock as stored, e.g. "17:00".
func (c Clock) Format24() string {
	return c.asTime().Format(clock24Format)
}

func ParseClock12(s string) (*Clock, error) {
	t, err := time.Parse(clock12Format, s)
	if err != nil {
		return nil, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func ParseClock24(s string) (*Clock, error) {
	t, err := time.Parse(clock24Format, s)
	if err != nil {
		return nil, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

// Shift is one calendar day of attendance. A nil TimeIn/TimeOut means the
// day was not worked. Hours are canonical two-decimal text ("8.00").
type Shift struct {
	Date     time.Time
	TimeIn   *Clock
	TimeOut  *Clock
	HoursReg string
	HoursOT  string
}

// Equal compares shifts by value, including the pointed-to clocks.
func (s Shift) Equal(o Shift) bool {
	return s.Date.Equal(o.Date) &&
		clockEqual(s.TimeIn, o.TimeIn) &&
		clockEqual(s.TimeOut, o.TimeOut) &&
		s.HoursReg == o.HoursReg &&
		s.HoursOT == o.HoursOT
}

func clockEqual(a, b *Clock) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type PayPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

func (p PayPeriod) String() string {
	return p.StartDate.Format(DateFormat) + " to " + p.EndDate.Format(DateFormat)
}

type SettingsRepo interface {
	GetPayPeriod() (*PayPeriod, error)
	UpdatePayPeriod(p PayPeriod) error
	// RollPayPeriod stores p and replaces the shifts of every employee with
	// shifts. Either both happen or neither does.
	RollPayPeriod(p PayPeriod, shifts []Shift) error
}
