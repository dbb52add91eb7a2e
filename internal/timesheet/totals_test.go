package timesheet

import (
	"errors"
	"testing"

	"timesheet-bot/internal/domain"
)

func TestWeekTotals(t *testing.T) {
	var week []domain.Shift
	for i := 0; i < 5; i++ {
		week = append(week, domain.Shift{HoursReg: "8.00", HoursOT: "0.00"})
	}
	for i := 0; i < 2; i++ {
		week = append(week, domain.Shift{HoursReg: "0.00", HoursOT: "0.00"})
	}
	reg, ot, err := WeekTotals(week)
	if err != nil {
		t.Fatalf("week totals: %v", err)
	}
	if FormatTotal(reg) != "40.00" || FormatTotal(ot) != "0.00" {
		t.Fatalf("got %v / %v", reg, ot)
	}
}

func TestWeekTotalsWithOvertime(t *testing.T) {
	week := DefaultShiftsFor(day(2024, 7, 1))[:7]
	week[0].HoursOT = "1.50"
	week[4].HoursOT = "2.25"
	week[2].HoursReg = "7.50"
	reg, ot, err := WeekTotals(week)
	if err != nil {
		t.Fatalf("week totals: %v", err)
	}
	if FormatTotal(reg) != "39.50" || FormatTotal(ot) != "3.75" {
		t.Fatalf("got %s / %s", FormatTotal(reg), FormatTotal(ot))
	}
}

func TestWeekTotalsRejectsWrongLength(t *testing.T) {
	if _, _, err := WeekTotals(make([]domain.Shift, 6)); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestWeekTotalsRejectsUnparsableHours(t *testing.T) {
	week := DefaultShiftsFor(day(2024, 7, 1))[:7]
	week[3].HoursReg = ""
	if _, _, err := WeekTotals(week); err == nil || errors.Is(err, ErrShape) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestSplitWeeks(t *testing.T) {
	shifts := DefaultShiftsFor(day(2024, 7, 1))
	w1, w2, err := SplitWeeks(shifts)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(w1) != 7 || len(w2) != 7 || !w2[0].Date.Equal(day(2024, 7, 8)) {
		t.Fatalf("unexpected split %d/%d", len(w1), len(w2))
	}
	if _, _, err := SplitWeeks(shifts[:13]); !errors.Is(err, ErrShape) {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}
