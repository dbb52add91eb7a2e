package domain

import (
	"fmt"
	"strings"
)

type EmployeeRepo interface {
	GetEmployees() ([]Employee, error)
	GetEmployee(id string) (Employee, error)
	AddEmployee(e Employee) error
	AddEmployees(es []Employee) error
	UpdateEmployee(e Employee) error
	DeleteEmployee(id string) error
	DeleteAllEmployees() error
}

// Employee owns its shifts; removing the employee removes them.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Position  string
	Contract  string
	Shifts    []Shift
}

func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// ParseEmployee reads a profile written as "ID;First;Last;Position;Contract".
func ParseEmployee(line string) (Employee, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 5 {
		return Employee{}, fmt.Errorf("expected 5 values separated by ';', got %d", len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return Employee{}, ErrEmptyEmployeeID
	}
	return Employee{
		ID:        parts[0],
		FirstName: parts[1],
		LastName:  parts[2],
		Position:  parts[3],
		Contract:  parts[4],
	}, nil
}
