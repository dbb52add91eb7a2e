package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"timesheet-bot/internal/domain"
)

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

type queryExecer interface {
	execer
	Query(query string, args ...any) (*sql.Rows, error)
}

func (r *SqliteEmployeeRepo) GetEmployees() ([]domain.Employee, error) {
	rows, err := r.db.Query(`SELECT employee_id, first_name, last_name, position, contract
		FROM employee ORDER BY first_name, last_name, employee_id`)
	if err != nil {
		return nil, err
	}
	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Contract); err != nil {
			rows.Close()
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The single pooled connection must be released before loading shifts.
	rows.Close()

	for i := range employees {
		if employees[i].Shifts, err = r.getShifts(employees[i].ID); err != nil {
			return nil, err
		}
	}
	return employees, nil
}

func (r *SqliteEmployeeRepo) GetEmployee(id string) (domain.Employee, error) {
	var e domain.Employee
	err := r.db.QueryRow(`SELECT employee_id, first_name, last_name, position, contract
		FROM employee WHERE employee_id = ?`, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Contract)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Employee{}, fmt.Errorf("%w: %q", domain.ErrEmployeeNotFound, id)
	}
	if err != nil {
		return domain.Employee{}, err
	}
	if e.Shifts, err = r.getShifts(id); err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

func (r *SqliteEmployeeRepo) AddEmployee(e domain.Employee) error {
	return r.AddEmployees([]domain.Employee{e})
}

// AddEmployees inserts all employees and their shifts or none of them.
func (r *SqliteEmployeeRepo) AddEmployees(es []domain.Employee) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range es {
		_, err := tx.Exec(`INSERT INTO employee (employee_id, first_name, last_name, position, contract)
			VALUES (?, ?, ?, ?, ?)`, e.ID, e.FirstName, e.LastName, e.Position, e.Contract)
		if isPrimaryKeyConflict(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateEmployeeID, e.ID)
		}
		if err != nil {
			return err
		}
		for _, s := range e.Shifts {
			if err := addShift(tx, e.ID, s); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func isPrimaryKeyConflict(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// UpdateEmployee saves the profile and the shifts matching by date. An
// unknown employee is ignored.
func (r *SqliteEmployeeRepo) UpdateEmployee(e domain.Employee) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE employee SET first_name = ?, last_name = ?, position = ?, contract = ?
		WHERE employee_id = ?`, e.FirstName, e.LastName, e.Position, e.Contract, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil
	}
	for _, s := range e.Shifts {
		timeIn, timeOut := clockValue(s.TimeIn), clockValue(s.TimeOut)
		_, err := tx.Exec(`UPDATE shift SET time_in = ?, time_out = ?, hours_reg = ?, hours_ot = ?
			WHERE employee_id = ? AND date = ?`,
			timeIn, timeOut, s.HoursReg, s.HoursOT, e.ID, s.Date.Format(domain.DateFormat))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SqliteEmployeeRepo) DeleteEmployee(id string) error {
	_, err := r.db.Exec(`DELETE FROM employee WHERE employee_id = ?`, id)
	return err
}

func (r *SqliteEmployeeRepo) DeleteAllEmployees() error {
	_, err := r.db.Exec(`DELETE FROM employee`)
	return err
}

func (r *SqliteEmployeeRepo) getShifts(employeeID string) ([]domain.Shift, error) {
	rows, err := r.db.Query(`SELECT date, time_in, time_out, hours_reg, hours_ot
		FROM shift WHERE employee_id = ? ORDER BY date`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []domain.Shift
	for rows.Next() {
		var (
			s               domain.Shift
			dateStr         string
			timeIn, timeOut sql.NullString
		)
		if err := rows.Scan(&dateStr, &timeIn, &timeOut, &s.HoursReg, &s.HoursOT); err != nil {
			return nil, err
		}
		if s.Date, err = time.Parse(domain.DateFormat, dateStr); err != nil {
			return nil, err
		}
		if s.TimeIn, err = scanClock(timeIn); err != nil {
			return nil, err
		}
		if s.TimeOut, err = scanClock(timeOut); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// resetShifts replaces every employee's shifts with shifts.
func resetShifts(tx queryExecer, shifts []domain.Shift) error {
	var ids []string
	rows, err := tx.Query(`SELECT employee_id FROM employee`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	if _, err := tx.Exec(`DELETE FROM shift`); err != nil {
		return err
	}
	for _, id := range ids {
		for _, s := range shifts {
			if err := addShift(tx, id, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func addShift(tx execer, employeeID string, s domain.Shift) error {
	_, err := tx.Exec(`INSERT INTO shift (date, time_in, time_out, hours_reg, hours_ot, employee_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Date.Format(domain.DateFormat), clockValue(s.TimeIn), clockValue(s.TimeOut), s.HoursReg, s.HoursOT, employeeID)
	return err
}

func clockValue(c *domain.Clock) any {
	if c == nil {
		return nil
	}
	return c.Format24()
}

func scanClock(v sql.NullString) (*domain.Clock, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	return domain.ParseClock24(v.String)
}
