package timesheet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"timesheet-bot/internal/domain"
)

// Field names one editable column of a timesheet row.
type Field string

const (
	FieldTimeIn   Field = "in"
	FieldTimeOut  Field = "out"
	FieldHoursReg Field = "reg"
	FieldHoursOT  Field = "ot"
)

var fieldByStructName = map[string]Field{
	"TimeIn":   FieldTimeIn,
	"TimeOut":  FieldTimeOut,
	"HoursReg": FieldHoursReg,
	"HoursOT":  FieldHoursOT,
}

func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldTimeIn, FieldTimeOut, FieldHoursReg, FieldHoursOT:
		return f, nil
	}
	return "", fmt.Errorf("unknown field %q (want in, out, reg or ot)", s)
}

func (f Field) isTime() bool {
	return f == FieldTimeIn || f == FieldTimeOut
}

// Hint is the correction message shown for an invalid value of f.
func (f Field) Hint() string {
	if f.isTime() {
		return TimeHint
	}
	return HoursHint
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("shifttime", func(fl validator.FieldLevel) bool {
		return ValidateTime(fl.Field().String())
	})
	validate.RegisterValidation("shifthours", func(fl validator.FieldLevel) bool {
		return ValidateHours(fl.Field().String())
	})
}

// InvalidFieldError means a field holds text its grammar rejects.
type InvalidFieldError struct {
	Field Field
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %s", e.Field, e.Value, e.Field.Hint())
}

// ErrInvalidShift is matched by errors returned from ShiftFields.ToShift.
var ErrInvalidShift = errors.New("shift has invalid fields")

type InvalidShiftError struct {
	Date   time.Time
	Fields []*InvalidFieldError
}

func (e *InvalidShiftError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("shift %s: %s", e.Date.Format(domain.DateFormat), strings.Join(parts, "; "))
}

func (e *InvalidShiftError) Unwrap() error { return ErrInvalidShift }

// ShiftFields is the raw text of one timesheet row while it is being edited.
type ShiftFields struct {
	Date     time.Time `validate:"-"`
	TimeIn   string    `validate:"shifttime"`
	TimeOut  string    `validate:"shifttime"`
	HoursReg string    `validate:"shifthours"`
	HoursOT  string    `validate:"shifthours"`
}

func FieldsFromShift(s domain.Shift) ShiftFields {
	return ShiftFields{
		Date:     s.Date,
		TimeIn:   clockText(s.TimeIn),
		TimeOut:  clockText(s.TimeOut),
		HoursReg: s.HoursReg,
		HoursOT:  s.HoursOT,
	}
}

func clockText(c *domain.Clock) string {
	if c == nil {
		return ""
	}
	return c.String()
}

func (f *ShiftFields) ptr(field Field) *string {
	switch field {
	case FieldTimeIn:
		return &f.TimeIn
	case FieldTimeOut:
		return &f.TimeOut
	case FieldHoursReg:
		return &f.HoursReg
	case FieldHoursOT:
		return &f.HoursOT
	}
	return nil
}

func (f ShiftFields) Get(field Field) string {
	if p := f.ptr(field); p != nil {
		return *p
	}
	return ""
}

// Set commits raw text into field. The stripped text is stored even when it
// is invalid, so it can be corrected; the returned *InvalidFieldError says so.
func (f *ShiftFields) Set(field Field, raw string) error {
	p := f.ptr(field)
	if p == nil {
		return fmt.Errorf("unknown field %q", field)
	}
	var (
		text string
		ok   bool
	)
	if field.isTime() {
		text, ok = CommitTime(raw)
	} else {
		text, ok = CommitHours(raw)
	}
	*p = text
	if !ok {
		return &InvalidFieldError{Field: field, Value: text}
	}
	return nil
}

// Commit normalizes every field, as done before saving a row that may still
// be mid-edit. It returns the joined field errors, if any.
func (f *ShiftFields) Commit() error {
	var errs []error
	for _, field := range []Field{FieldTimeIn, FieldTimeOut, FieldHoursReg, FieldHoursOT} {
		if err := f.Set(field, f.Get(field)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f ShiftFields) IsValid() bool {
	return validate.Struct(f) == nil
}

// ToShift converts the row into a Shift. It fails with an *InvalidShiftError
// (matching ErrInvalidShift) when any field is currently invalid.
func (f ShiftFields) ToShift() (domain.Shift, error) {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Shift{}, err
		}
		invalid := &InvalidShiftError{Date: f.Date}
		for _, fe := range verrs {
			field := fieldByStructName[fe.StructField()]
			invalid.Fields = append(invalid.Fields, &InvalidFieldError{Field: field, Value: f.Get(field)})
		}
		return domain.Shift{}, invalid
	}

	timeIn, err := parseFieldClock(f.TimeIn)
	if err != nil {
		return domain.Shift{}, err
	}
	timeOut, err := parseFieldClock(f.TimeOut)
	if err != nil {
		return domain.Shift{}, err
	}
	return domain.Shift{
		Date:     f.Date,
		TimeIn:   timeIn,
		TimeOut:  timeOut,
		HoursReg: FormatHours(f.HoursReg),
		HoursOT:  FormatHours(f.HoursOT),
	}, nil
}

func parseFieldClock(text string) (*domain.Clock, error) {
	if text == "" {
		return nil, nil
	}
	// The grammar allows any single whitespace before the meridiem.
	return domain.ParseClock12(text[:5] + " " + text[6:])
}
