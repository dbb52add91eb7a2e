package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

const (
	KeyDay    = "cal_day"
	KeyPrev   = "cal_prev"
	KeyNext   = "cal_next"
	KeyIgnore = "cal_ignore"
)

// CalendarController shows an inline month calendar and reports the picked day.
type CalendarController struct {
	OnDate func(time.Time, telebot.Context) error
}

// ShowCalendar sends or edits a calendar for the month containing around.
func (cc *CalendarController) ShowCalendar(c telebot.Context, around time.Time) error {
	return SendCalendar(c, around.Year(), int(around.Month()))
}

// SendCalendar builds and shows the calendar for the given month.
func SendCalendar(c telebot.Context, year, month int) error {
	title, markup := BuildCalendar(year, month)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// BuildCalendar lays out a Monday-first month grid with month navigation.
func BuildCalendar(year, month int) (string, *telebot.ReplyMarkup) {
	year, month = normalizeMonth(year, month)
	markup := &telebot.ReplyMarkup{}

	var rows []telebot.Row
	header := telebot.Row{}
	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		header = append(header, markup.Data(wd, KeyIgnore))
	}
	rows = append(rows, header)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	week := telebot.Row{}
	for i := 0; i < (int(first.Weekday())+6)%7; i++ {
		week = append(week, markup.Data(" ", KeyIgnore))
	}
	for d := 1; d <= daysInMonth(year, month); d++ {
		btn := markup.Data(strconv.Itoa(d), KeyDay, fmt.Sprintf("%d-%d-%d", d, month, year))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, markup.Data(" ", KeyIgnore))
		}
		rows = append(rows, week)
	}
	prev := markup.Data("<", KeyPrev, fmt.Sprintf("%d-%d", month-1, year))
	next := markup.Data(">", KeyNext, fmt.Sprintf("%d-%d", month+1, year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	title := "Pick the pay period start date: " + time.Month(month).String() + " " + strconv.Itoa(year)
	return title, markup
}

// HandleCallback serves the cal_* callback keys.
func (cc *CalendarController) HandleCallback(c telebot.Context, key, payload string) error {
	switch key {
	case KeyDay:
		date, err := ParseDay(payload)
		if err != nil || cc.OnDate == nil {
			return c.Send("Invalid date.")
		}
		return cc.OnDate(date, c)
	case KeyPrev, KeyNext:
		year, month, err := ParseMonth(payload)
		if err != nil {
			return c.Send("Invalid month.")
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

// ParseDay reads a "d-m-yyyy" payload.
func ParseDay(payload string) (time.Time, error) {
	parts := SplitDateData(payload)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad day payload %q", payload)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return time.Time{}, err
	}
	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("bad day payload %q", payload)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseMonth reads a "m-yyyy" payload; months 0 and 13 roll the year.
func ParseMonth(payload string) (year, month int, err error) {
	parts := SplitDateData(payload)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad month payload %q", payload)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return 0, 0, err
	}
	year, month = normalizeMonth(nums[1], nums[0])
	return year, month, nil
}

func SplitDateData(data string) []string {
	return strings.Split(data, "-")
}

func atoiAll(parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func normalizeMonth(year, month int) (int, int) {
	if month < 1 {
		return year - 1, 12
	}
	if month > 12 {
		return year + 1, 1
	}
	return year, month
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
