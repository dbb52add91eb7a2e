package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"timesheet-bot/internal/domain"
)

type fakeSettings struct {
	period    *domain.PayPeriod
	err       error
	rollErr   error
	employees *fakeEmployees
}

func (f *fakeSettings) GetPayPeriod() (*domain.PayPeriod, error) { return f.period, f.err }

func (f *fakeSettings) UpdatePayPeriod(p domain.PayPeriod) error {
	if f.err != nil {
		return f.err
	}
	f.period = &p
	return nil
}

// RollPayPeriod changes nothing when it fails.
func (f *fakeSettings) RollPayPeriod(p domain.PayPeriod, shifts []domain.Shift) error {
	if f.err != nil {
		return f.err
	}
	if f.rollErr != nil {
		return f.rollErr
	}
	f.period = &p
	f.employees.mu.Lock()
	defer f.employees.mu.Unlock()
	for id, e := range f.employees.byID {
		e.Shifts = append([]domain.Shift(nil), shifts...)
		f.employees.byID[id] = e
	}
	return nil
}

type fakeEmployees struct {
	mu   sync.Mutex
	byID map[string]domain.Employee
	err  error
	// readDelay widens the gap between loading and storing an employee.
	readDelay time.Duration
}

func newFakeEmployees() *fakeEmployees {
	return &fakeEmployees{byID: map[string]domain.Employee{}}
}

func copyEmployee(e domain.Employee) domain.Employee {
	e.Shifts = append([]domain.Shift(nil), e.Shifts...)
	return e
}

func (f *fakeEmployees) stored(id string) domain.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyEmployee(f.byID[id])
}

func (f *fakeEmployees) GetEmployees() ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Employee
	for _, e := range f.byID {
		out = append(out, copyEmployee(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FirstName < out[j].FirstName })
	return out, nil
}

func (f *fakeEmployees) GetEmployee(id string) (domain.Employee, error) {
	f.mu.Lock()
	e, ok := f.byID[id]
	e = copyEmployee(e)
	f.mu.Unlock()
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: %q", domain.ErrEmployeeNotFound, id)
	}
	time.Sleep(f.readDelay)
	return e, nil
}

func (f *fakeEmployees) AddEmployee(e domain.Employee) error {
	return f.AddEmployees([]domain.Employee{e})
}

func (f *fakeEmployees) AddEmployees(es []domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, e := range es {
		if _, ok := f.byID[e.ID]; ok {
			return domain.ErrDuplicateEmployeeID
		}
	}
	for _, e := range es {
		f.byID[e.ID] = copyEmployee(e)
	}
	return nil
}

func (f *fakeEmployees) UpdateEmployee(e domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[e.ID]; ok {
		f.byID[e.ID] = copyEmployee(e)
	}
	return nil
}

func (f *fakeEmployees) DeleteEmployee(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployees) DeleteAllEmployees() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID = map[string]domain.Employee{}
	return nil
}

var errDisk = errors.New("disk I/O error")
