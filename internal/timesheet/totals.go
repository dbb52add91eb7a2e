package timesheet

import (
	"errors"
	"fmt"
	"strconv"

	"timesheet-bot/internal/domain"
)

const WeekDays = 7

// ErrShape is returned when a shift list does not cover the expected days.
var ErrShape = errors.New("unexpected number of shifts")

// WeekTotals sums regular and overtime hours over one week of shifts.
func WeekTotals(shifts []domain.Shift) (reg, ot float64, err error) {
	if len(shifts) != WeekDays {
		return 0, 0, fmt.Errorf("%w: expected %d shifts but got %d", ErrShape, WeekDays, len(shifts))
	}
	for _, s := range shifts {
		r, err := strconv.ParseFloat(s.HoursReg, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("regular hours for %s: %w", s.Date.Format(domain.DateFormat), err)
		}
		o, err := strconv.ParseFloat(s.HoursOT, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("overtime hours for %s: %w", s.Date.Format(domain.DateFormat), err)
		}
		reg += r
		ot += o
	}
	return reg, ot, nil
}

// SplitWeeks splits a full pay period into its two weeks.
func SplitWeeks(shifts []domain.Shift) (week1, week2 []domain.Shift, err error) {
	if len(shifts) != PayPeriodDays {
		return nil, nil, fmt.Errorf("%w: expected %d shifts but got %d", ErrShape, PayPeriodDays, len(shifts))
	}
	return shifts[:WeekDays], shifts[WeekDays:], nil
}

// FormatTotal renders a total with two decimals. Plain float rounding is used.
func FormatTotal(total float64) string {
	return fmt.Sprintf("%.2f", total)
}
