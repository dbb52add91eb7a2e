package service

import (
	"errors"
	"fmt"
	"log"

	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/timesheet"
)

// known errors are returned to callers unchanged so they can be told apart.
var known = []error{
	domain.ErrDuplicateEmployeeID,
	domain.ErrEmployeeNotFound,
	domain.ErrEmptyEmployeeID,
	domain.ErrNoPayPeriod,
	domain.ErrShiftNotFound,
	timesheet.ErrInvalidShift,
	timesheet.ErrShape,
}

// wrapUnexpected logs anything outside the known set and wraps it in
// domain.ErrInternal.
func wrapUnexpected(tag string, err error) error {
	if err == nil {
		return nil
	}
	var fieldErr *timesheet.InvalidFieldError
	if errors.As(err, &fieldErr) {
		return err
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	log.Printf("[%s] unexpected error: %v", tag, err)
	return fmt.Errorf("%w: %v", domain.ErrInternal, err)
}
