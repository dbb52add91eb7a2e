package telegram

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/app/service"
	"timesheet-bot/internal/delivery/telegram/flows"
	"timesheet-bot/internal/delivery/telegram/keyboards"
	"timesheet-bot/internal/delivery/telegram/middleware"
	"timesheet-bot/internal/delivery/telegram/router"
	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/report"
	"timesheet-bot/internal/timesheet"
	"timesheet-bot/pkg/calendar"
)

const exportTimeout = time.Minute

type Handler struct {
	Bot       *telebot.Bot
	Periods   *service.PayPeriodService
	Employees *service.EmployeeService
	Reports   *service.ReportService
	Async     *service.AsyncService
	Calendar  *calendar.CalendarController
	Router    *router.CallbackRouter
	Confirm   *flows.Confirmations
	AdminIDs  []int64
}

func (h *Handler) Register() {
	if h.Router == nil {
		h.Router = router.New()
	}
	if h.Confirm == nil {
		h.Confirm = flows.NewConfirmations(flows.DefaultConfirmTTL)
	}
	if h.Calendar == nil {
		h.Calendar = &calendar.CalendarController{}
	}
	h.Calendar.OnDate = h.askRollover

	h.Bot.Use(middleware.AdminOnly(h.AdminIDs))

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/period", h.handlePeriod)
	h.Bot.Handle("/rollover", h.handleRollover)
	h.Bot.Handle("/employees", h.handleEmployees)
	h.Bot.Handle("/add", h.handleAdd)
	h.Bot.Handle("/edit", h.handleEdit)
	h.Bot.Handle("/delete", h.handleDelete)
	h.Bot.Handle("/deleteall", h.handleDeleteAll)
	h.Bot.Handle("/timesheet", h.handleTimesheet)
	h.Bot.Handle("/set", h.handleSet)
	h.Bot.Handle("/export", h.handleExport)

	h.Bot.Handle(telebot.OnText, func(c telebot.Context) error {
		switch c.Text() {
		case keyboards.BtnPeriod.Text:
			return h.handlePeriod(c)
		case keyboards.BtnEmployees.Text:
			return h.handleEmployees(c)
		case keyboards.BtnRollover.Text:
			return h.handleRollover(c)
		case keyboards.BtnExport.Text:
			return h.sendExport(c, report.FormatPDF)
		}
		return nil
	})

	flows.RegisterConfirm(h.Router, h.Confirm)
	h.Router.CalDelegate = h.Calendar.HandleCallback
	h.Router.Attach(h.Bot)
}

// fail logs unexpected errors and tells the operator what went wrong.
func (h *Handler) fail(c telebot.Context, err error) error {
	if errors.Is(err, domain.ErrInternal) {
		log.Printf("[bot] chat=%d: %v", c.Chat().ID, err)
	}
	return middleware.EditOrSend(c, userMessage(err))
}

func (h *Handler) handleStart(c telebot.Context) error {
	msg := "Timesheet bot.\n\n" +
		"/period shows the pay period\n" +
		"/rollover starts a new pay period\n" +
		"/employees lists employees\n" +
		"/add ID;First;Last;Position;Contract adds one\n" +
		"/edit ID;First;Last;Position;Contract changes a profile\n" +
		"/delete ID removes one, /deleteall removes everyone\n" +
		"/timesheet ID shows a timesheet\n" +
		"/set ID YYYY-MM-DD in|out|reg|ot VALUE edits a shift\n" +
		"/export [pdf|xlsx] sends the report"
	return c.Send(msg, keyboards.MainMenu())
}

func (h *Handler) handlePeriod(c telebot.Context) error {
	p, err := h.Periods.Current()
	if err != nil {
		return h.fail(c, err)
	}
	return c.Send(formatPeriod(p))
}

func (h *Handler) handleRollover(c telebot.Context) error {
	if args := c.Args(); len(args) > 0 {
		date, err := time.Parse(domain.DateFormat, args[0])
		if err != nil {
			return c.Send("Bad date, expected YYYY-MM-DD.")
		}
		return h.askRollover(date, c)
	}
	around := time.Now()
	if p, err := h.Periods.Current(); err == nil {
		around = timesheet.NextDate(p.EndDate, 1)
	}
	return h.Calendar.ShowCalendar(c, around)
}

func (h *Handler) askRollover(date time.Time, c telebot.Context) error {
	next := timesheet.RollPayPeriod(date)
	prompt := "Start the pay period " + next.String() + "? Every timesheet is reset to the default shifts."
	return h.Confirm.Ask(c, prompt, func(c telebot.Context) error {
		p, err := h.Periods.Roll(date)
		if err != nil {
			return h.fail(c, err)
		}
		return middleware.EditOrSend(c, "Pay period is now "+p.String()+".")
	})
}

func (h *Handler) handleEmployees(c telebot.Context) error {
	es, err := h.Employees.List()
	if err != nil {
		return h.fail(c, err)
	}
	return c.Send(formatEmployees(es))
}

func (h *Handler) handleAdd(c telebot.Context) error {
	profile, err := domain.ParseEmployee(c.Message().Payload)
	if err != nil {
		return c.Send(err.Error() + "\n" + usageAdd)
	}
	e, err := h.Employees.Blank()
	if err != nil {
		return h.fail(c, err)
	}
	profile.Shifts = e.Shifts
	if err := h.Employees.Add(profile); err != nil {
		return h.fail(c, err)
	}
	return c.Send("Added " + profile.FullName() + " (ID " + profile.ID + ").")
}

func (h *Handler) handleEdit(c telebot.Context) error {
	profile, err := domain.ParseEmployee(c.Message().Payload)
	if err != nil {
		return c.Send(err.Error() + "\n" + usageEdit)
	}
	if err := h.Employees.UpdateProfile(profile); err != nil {
		return h.fail(c, err)
	}
	return c.Send("Updated " + profile.FullName() + " (ID " + profile.ID + ").")
}

func (h *Handler) handleDelete(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Usage: /delete ID")
	}
	e, err := h.Employees.Get(args[0])
	if err != nil {
		return h.fail(c, err)
	}
	return h.Confirm.Ask(c, "Delete "+e.FullName()+" (ID "+e.ID+")?", func(c telebot.Context) error {
		if err := h.Employees.Delete(e.ID); err != nil {
			return h.fail(c, err)
		}
		return middleware.EditOrSend(c, "Deleted "+e.FullName()+".")
	})
}

func (h *Handler) handleDeleteAll(c telebot.Context) error {
	return h.Confirm.Ask(c, "Delete every employee and their timesheets?", func(c telebot.Context) error {
		if err := h.Employees.DeleteAll(); err != nil {
			return h.fail(c, err)
		}
		return middleware.EditOrSend(c, "All employees deleted.")
	})
}

func (h *Handler) handleTimesheet(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send("Usage: /timesheet ID")
	}
	e, err := h.Employees.Get(args[0])
	if err != nil {
		return h.fail(c, err)
	}
	sheet, err := report.BuildEmployeeSheet(e)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Send(formatTimesheet(sheet), telebot.ModeHTML)
}

func (h *Handler) handleSet(c telebot.Context) error {
	edit, err := parseShiftEdit(c.Args())
	if err != nil {
		return c.Send(err.Error() + "\n" + usageSet)
	}
	value, err := h.Employees.EditShiftField(edit.EmployeeID, edit.Date, edit.Field, edit.Value)
	if err != nil {
		return h.fail(c, err)
	}
	if value == "" {
		value = "cleared"
	}
	return c.Send("Saved " + string(edit.Field) + " for " + edit.Date.Format(domain.DateFormat) + ": " + value)
}

func (h *Handler) handleExport(c telebot.Context) error {
	var arg string
	if args := c.Args(); len(args) > 0 {
		arg = strings.ToLower(args[0])
	}
	format, err := report.ParseFormat(arg)
	if err != nil {
		return c.Send("Usage: /export [pdf|xlsx]")
	}
	return h.sendExport(c, format)
}

func (h *Handler) sendExport(c telebot.Context, format report.Format) error {
	_ = c.Notify(telebot.UploadingDocument)
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	data, err := h.Reports.ExportBytes(ctx, h.Async, format)
	if err != nil {
		return h.fail(c, err)
	}
	log.Printf("[bot] chat=%d export %s (%d bytes)", c.Chat().ID, format, len(data))
	return c.Send(&telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(data)),
		FileName: format.FileName(),
		MIME:     format.MIME(),
	})
}
