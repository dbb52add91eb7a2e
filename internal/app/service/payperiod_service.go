package service

import (
	"log"
	"sync"
	"time"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/timesheet"
)

type PayPeriodService struct {
	Settings domain.SettingsRepo

	// mu serializes every store write, including those of EmployeeService.
	mu sync.Mutex
}

func NewPayPeriodService(settings domain.SettingsRepo) *PayPeriodService {
	return &PayPeriodService{Settings: settings}
}

// Current returns domain.ErrNoPayPeriod when nothing is stored.
func (s *PayPeriodService) Current() (domain.PayPeriod, error) {
	p, err := s.Settings.GetPayPeriod()
	if err != nil {
		return domain.PayPeriod{}, wrapUnexpected("period", err)
	}
	if p == nil {
		return domain.PayPeriod{}, domain.ErrNoPayPeriod
	}
	return *p, nil
}

// EnsureDefault stores a pay period starting at now if none exists yet.
func (s *PayPeriodService) EnsureDefault(now time.Time) (domain.PayPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.Settings.GetPayPeriod()
	if err != nil {
		return domain.PayPeriod{}, wrapUnexpected("period", err)
	}
	if p != nil {
		return *p, nil
	}
	log.Printf("[period] no pay period set, using default starting %s", timesheet.Date(now).Format(domain.DateFormat))
	def := timesheet.DefaultPayPeriod(now)
	if err := s.Settings.UpdatePayPeriod(def); err != nil {
		return domain.PayPeriod{}, wrapUnexpected("period", err)
	}
	return def, nil
}

// Roll replaces the pay period and regenerates every employee's shifts.
// All shift edits of the previous period are lost; callers confirm first.
func (s *PayPeriodService) Roll(start time.Time) (domain.PayPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := timesheet.RollPayPeriod(start)
	log.Printf("[period] updating pay period to %s", p)
	if err := s.Settings.RollPayPeriod(p, timesheet.DefaultShiftsFor(p.StartDate)); err != nil {
		return domain.PayPeriod{}, wrapUnexpected("period", err)
	}
	log.Printf("[period] pay period updated")
	return p, nil
}

// DefaultShifts returns the default shifts for the current pay period, or
// none when no pay period is set.
func (s *PayPeriodService) DefaultShifts() ([]domain.Shift, error) {
	p, err := s.Settings.GetPayPeriod()
	if err != nil {
		return nil, wrapUnexpected("period", err)
	}
	if p == nil {
		return nil, nil
	}
	return timesheet.DefaultShiftsFor(p.StartDate), nil
}
