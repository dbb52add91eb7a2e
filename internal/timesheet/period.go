package timesheet

import (
	"time"

	"timesheet-bot/internal/domain"
)

// PayPeriodDays is the fixed length of a pay period.
const PayPeriodDays = 14

const (
	DefaultHoursReg     = "8.00"
	DefaultHoursOT      = "0.00"
	DefaultHoursWeekend = "0.00"
)

func DefaultTimeIn() *domain.Clock  { return domain.NewClock(9, 0) }
func DefaultTimeOut() *domain.Clock { return domain.NewClock(17, 0) }

// Date returns the calendar day of t as UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextDate returns the calendar date days after curr.
func NextDate(curr time.Time, days int) time.Time {
	y, m, d := curr.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC)
}

func RollPayPeriod(start time.Time) domain.PayPeriod {
	return domain.PayPeriod{
		StartDate: Date(start),
		EndDate:   NextDate(start, PayPeriodDays-1),
	}
}

// DefaultPayPeriod is used when nothing has been stored yet: it starts today.
func DefaultPayPeriod(now time.Time) domain.PayPeriod {
	return RollPayPeriod(now)
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DefaultShift is a 9-to-5 eight hour day, or an empty day on weekends.
func DefaultShift(date time.Time) domain.Shift {
	if IsWeekend(date) {
		return domain.Shift{
			Date:     date,
			HoursReg: DefaultHoursWeekend,
			HoursOT:  DefaultHoursWeekend,
		}
	}
	return domain.Shift{
		Date:     date,
		TimeIn:   DefaultTimeIn(),
		TimeOut:  DefaultTimeOut(),
		HoursReg: DefaultHoursReg,
		HoursOT:  DefaultHoursOT,
	}
}

func DefaultShiftsFor(start time.Time) []domain.Shift {
	shifts := make([]domain.Shift, 0, PayPeriodDays)
	for i := 0; i < PayPeriodDays; i++ {
		shifts = append(shifts, DefaultShift(NextDate(start, i)))
	}
	return shifts
}
