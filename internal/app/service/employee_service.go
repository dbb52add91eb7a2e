package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/timesheet"
)

// EmployeeService writes under the lock of its PayPeriodService, so a
// read-modify-write of one employee never interleaves with another write.
type EmployeeService struct {
	Repo    domain.EmployeeRepo
	Periods *PayPeriodService
}

func NewEmployeeService(repo domain.EmployeeRepo, periods *PayPeriodService) *EmployeeService {
	return &EmployeeService{Repo: repo, Periods: periods}
}

func (s *EmployeeService) lock() func() {
	s.Periods.mu.Lock()
	return s.Periods.mu.Unlock
}

func (s *EmployeeService) List() ([]domain.Employee, error) {
	es, err := s.Repo.GetEmployees()
	return es, wrapUnexpected("employee", err)
}

func (s *EmployeeService) Get(id string) (domain.Employee, error) {
	e, err := s.Repo.GetEmployee(id)
	return e, wrapUnexpected("employee", err)
}

// Blank returns an empty profile carrying the current default shifts.
func (s *EmployeeService) Blank() (domain.Employee, error) {
	shifts, err := s.Periods.DefaultShifts()
	if err != nil {
		return domain.Employee{}, err
	}
	return domain.Employee{Shifts: shifts}, nil
}

// Add stores a new employee. An employee without shifts gets the defaults
// of the current pay period.
func (s *EmployeeService) Add(e domain.Employee) error {
	e, err := s.prepare(e)
	if err != nil {
		return err
	}
	defer s.lock()()
	log.Printf("[employee] adding %q", e.ID)
	return wrapUnexpected("employee", s.Repo.AddEmployee(e))
}

// AddAll stores every employee or none of them.
func (s *EmployeeService) AddAll(es []domain.Employee) error {
	prepared := make([]domain.Employee, 0, len(es))
	for _, e := range es {
		e, err := s.prepare(e)
		if err != nil {
			return err
		}
		prepared = append(prepared, e)
	}
	defer s.lock()()
	log.Printf("[employee] adding %d employees", len(prepared))
	return wrapUnexpected("employee", s.Repo.AddEmployees(prepared))
}

func (s *EmployeeService) prepare(e domain.Employee) (domain.Employee, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return e, domain.ErrEmptyEmployeeID
	}
	if len(e.Shifts) == 0 {
		blank, err := s.Blank()
		if err != nil {
			return e, err
		}
		e.Shifts = blank.Shifts
	}
	return e, nil
}

// Update stores the profile and all 14 shifts. Each shift must be valid and
// is stored in its normalized form.
func (s *EmployeeService) Update(e domain.Employee) error {
	defer s.lock()()
	return s.update(e)
}

func (s *EmployeeService) update(e domain.Employee) error {
	if len(e.Shifts) != timesheet.PayPeriodDays {
		return fmt.Errorf("%w: employee %q has %d shifts", timesheet.ErrShape, e.ID, len(e.Shifts))
	}
	shifts := make([]domain.Shift, len(e.Shifts))
	for i, sh := range e.Shifts {
		normalized, err := timesheet.FieldsFromShift(sh).ToShift()
		if err != nil {
			return err
		}
		shifts[i] = normalized
	}
	e.Shifts = shifts
	return wrapUnexpected("employee", s.Repo.UpdateEmployee(e))
}

// UpdateProfile replaces the name, position and contract of an existing
// employee and keeps the shifts.
func (s *EmployeeService) UpdateProfile(p domain.Employee) error {
	defer s.lock()()
	e, err := s.Get(strings.TrimSpace(p.ID))
	if err != nil {
		return err
	}
	e.FirstName, e.LastName, e.Position, e.Contract = p.FirstName, p.LastName, p.Position, p.Contract
	log.Printf("[employee] updating profile %q", e.ID)
	return s.update(e)
}

func (s *EmployeeService) Delete(id string) error {
	defer s.lock()()
	log.Printf("[employee] deleting %q", id)
	return wrapUnexpected("employee", s.Repo.DeleteEmployee(id))
}

func (s *EmployeeService) DeleteAll() error {
	defer s.lock()()
	log.Printf("[employee] deleting all employees")
	return wrapUnexpected("employee", s.Repo.DeleteAllEmployees())
}

// EditShiftField commits one raw field value into the shift on date. The
// row is stored only when every field of it is valid. The committed field
// text is returned so it can be shown back to the operator.
func (s *EmployeeService) EditShiftField(id string, date time.Time, field timesheet.Field, raw string) (string, error) {
	defer s.lock()()
	e, err := s.Get(id)
	if err != nil {
		return "", err
	}
	idx := -1
	for i, sh := range e.Shifts {
		if sh.Date.Equal(timesheet.Date(date)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", fmt.Errorf("%w: %s for employee %q", domain.ErrShiftNotFound, date.Format(domain.DateFormat), id)
	}

	fields := timesheet.FieldsFromShift(e.Shifts[idx])
	if err := fields.Set(field, raw); err != nil {
		return fields.Get(field), err
	}
	shift, err := fields.ToShift()
	if err != nil {
		return fields.Get(field), err
	}
	e.Shifts[idx] = shift
	if err := s.Repo.UpdateEmployee(e); err != nil {
		return "", wrapUnexpected("employee", err)
	}
	return fields.Get(field), nil
}
