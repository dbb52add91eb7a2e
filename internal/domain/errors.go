package domain

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrDuplicateEmployeeID = errors.New("an employee with this id already exists")
	ErrEmptyEmployeeID     = errors.New("employee id is required")
	ErrNoPayPeriod         = errors.New("pay period is not set")
	ErrShiftNotFound       = errors.New("no shift on that date")
	ErrInternal            = errors.New("internal error")
)
