package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	settingPayPeriodStart = "pay_period_start_date"
	settingPayPeriodEnd   = "pay_period_end_date"
)

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);
`

const seedSettings = `
INSERT OR IGNORE INTO settings (key, value) VALUES
    ('` + settingPayPeriodStart + `', NULL),
    ('` + settingPayPeriodEnd + `', NULL);
`

const createEmployeeTable = `
CREATE TABLE IF NOT EXISTS employee (
    employee_id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    position TEXT NOT NULL DEFAULT '',
    contract TEXT NOT NULL DEFAULT ''
);
`

const createShiftTable = `
CREATE TABLE IF NOT EXISTS shift (
    date TEXT NOT NULL,
    time_in TEXT,
    time_out TEXT,
    hours_reg TEXT NOT NULL,
    hours_ot TEXT NOT NULL,
    employee_id TEXT NOT NULL REFERENCES employee(employee_id) ON DELETE CASCADE,
    UNIQUE (employee_id, date)
);
`

const createShiftIndex = `CREATE INDEX IF NOT EXISTS idx_shift_employee_id ON shift (employee_id);`

// Open opens the database file with foreign keys enforced. A single
// connection is used so the pragma applies to every statement.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// dsn escapes path as a file URI so '?', '#' and '%' stay part of the name.
func dsn(path string) string {
	u := url.URL{Path: path}
	return "file:" + u.EscapedPath() + "?_foreign_keys=on"
}

func Migrate(db *sql.DB) error {
	for _, stmt := range []string{
		createSettingsTable,
		seedSettings,
		createEmployeeTable,
		createShiftTable,
		createShiftIndex,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
