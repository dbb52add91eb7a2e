package timesheet

import (
	"errors"
	"testing"

	"timesheet-bot/internal/domain"
)

func TestFieldsRoundTrip(t *testing.T) {
	for _, s := range DefaultShiftsFor(day(2024, 7, 1)) {
		fields := FieldsFromShift(s)
		got, err := fields.ToShift()
		if err != nil {
			t.Fatalf("to shift: %v", err)
		}
		if !got.Equal(s) {
			t.Fatalf("round trip mismatch: %+v != %+v", got, s)
		}
		if again := FieldsFromShift(got); again != fields {
			t.Fatalf("re-rendered fields differ: %+v != %+v", again, fields)
		}
	}
}

func TestFieldsRenderTwelveHourClock(t *testing.T) {
	s := domain.Shift{Date: day(2024, 7, 1), TimeIn: domain.NewClock(9, 5), TimeOut: domain.NewClock(17, 30), HoursReg: "8.00", HoursOT: "0.00"}
	f := FieldsFromShift(s)
	if f.TimeIn != "09:05 AM" || f.TimeOut != "05:30 PM" {
		t.Fatalf("unexpected field text %q / %q", f.TimeIn, f.TimeOut)
	}
}

func TestSetFormatsHoursOnCommit(t *testing.T) {
	f := FieldsFromShift(DefaultShift(day(2024, 7, 1)))
	if err := f.Set(FieldHoursOT, " 1.5 "); err != nil {
		t.Fatalf("set: %v", err)
	}
	if f.HoursOT != "1.50" {
		t.Fatalf("hours not formatted: %q", f.HoursOT)
	}
	if err := f.Set(FieldTimeOut, ""); err != nil {
		t.Fatalf("clear time: %v", err)
	}
	s, err := f.ToShift()
	if err != nil {
		t.Fatalf("to shift: %v", err)
	}
	if s.TimeOut != nil || s.HoursOT != "1.50" {
		t.Fatalf("unexpected shift %+v", s)
	}
}

func TestSetKeepsInvalidText(t *testing.T) {
	f := FieldsFromShift(DefaultShift(day(2024, 7, 1)))
	err := f.Set(FieldTimeIn, "9:30 AM")
	var fe *InvalidFieldError
	if !errors.As(err, &fe) || fe.Field != FieldTimeIn {
		t.Fatalf("expected InvalidFieldError, got %v", err)
	}
	if f.TimeIn != "9:30 AM" {
		t.Fatalf("invalid text was not kept: %q", f.TimeIn)
	}
	if f.IsValid() {
		t.Fatalf("fields should be invalid")
	}

	_, err = f.ToShift()
	if !errors.Is(err, ErrInvalidShift) {
		t.Fatalf("expected ErrInvalidShift, got %v", err)
	}
	var se *InvalidShiftError
	if !errors.As(err, &se) || len(se.Fields) != 1 || se.Fields[0].Field != FieldTimeIn {
		t.Fatalf("unexpected invalid shift error %v", err)
	}
}

func TestCommitNormalizesAllFields(t *testing.T) {
	f := ShiftFields{Date: day(2024, 7, 2), TimeIn: " 08:00 AM", TimeOut: "04:00 PM ", HoursReg: "8", HoursOT: "."}
	if err := f.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	want := ShiftFields{Date: day(2024, 7, 2), TimeIn: "08:00 AM", TimeOut: "04:00 PM", HoursReg: "8.00", HoursOT: "0.00"}
	if f != want {
		t.Fatalf("got %+v", f)
	}
}

func TestCommitReportsEveryInvalidField(t *testing.T) {
	f := ShiftFields{Date: day(2024, 7, 2), TimeIn: "13:00 PM", TimeOut: "05:00 PM", HoursReg: "100", HoursOT: "0"}
	err := f.Commit()
	if err == nil {
		t.Fatalf("expected errors")
	}
	_, err = f.ToShift()
	var se *InvalidShiftError
	if !errors.As(err, &se) || len(se.Fields) != 2 {
		t.Fatalf("expected two invalid fields, got %v", err)
	}
	if f.HoursOT != "0.00" {
		t.Fatalf("valid field was not formatted: %q", f.HoursOT)
	}
}

func TestUncommittedHoursAreFormattedByToShift(t *testing.T) {
	f := ShiftFields{Date: day(2024, 7, 2), HoursReg: "8", HoursOT: ""}
	s, err := f.ToShift()
	if err != nil {
		t.Fatalf("to shift: %v", err)
	}
	if s.HoursReg != "8.00" || s.HoursOT != "0.00" {
		t.Fatalf("unexpected hours %q / %q", s.HoursReg, s.HoursOT)
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"in", "OUT", " reg", "ot"} {
		if _, err := ParseField(s); err != nil {
			t.Fatalf("ParseField(%q): %v", s, err)
		}
	}
	if _, err := ParseField("date"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
