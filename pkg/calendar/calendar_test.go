package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("6-7-2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", got)
	}
	for _, bad := range []string{"31-2-2024", "1-13-2024", "x-1-2024", "1-2024"} {
		if _, err := ParseDay(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseMonthRollsYear(t *testing.T) {
	cases := map[string][2]int{
		"0-2024":  {2023, 12},
		"13-2024": {2025, 1},
		"7-2024":  {2024, 7},
	}
	for in, want := range cases {
		y, m, err := ParseMonth(in)
		if err != nil || y != want[0] || m != want[1] {
			t.Fatalf("ParseMonth(%q) = %d-%d, %v", in, y, m, err)
		}
	}
}

func TestBuildCalendarLayout(t *testing.T) {
	// July 2024 starts on a Monday and has 31 days.
	title, markup := BuildCalendar(2024, 7)
	if !strings.Contains(title, "July 2024") {
		t.Fatalf("unexpected title %q", title)
	}
	rows := markup.InlineKeyboard
	// header + 5 weeks + navigation
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[1][0].Text != "1" {
		t.Fatalf("first day not on monday: %q", rows[1][0].Text)
	}
	for _, row := range rows[:len(rows)-1] {
		if len(row) != 7 {
			t.Fatalf("row with %d buttons", len(row))
		}
	}
	nav := rows[len(rows)-1]
	if len(nav) != 2 || nav[0].Text != "<" || nav[1].Text != ">" {
		t.Fatalf("unexpected navigation row %+v", nav)
	}
}

func TestBuildCalendarPadsLeadingDays(t *testing.T) {
	// September 2024 starts on a Sunday.
	_, markup := BuildCalendar(2024, 9)
	first := markup.InlineKeyboard[1]
	if first[6].Text != "1" || first[0].Text != " " {
		t.Fatalf("unexpected first week %+v", first)
	}
}
