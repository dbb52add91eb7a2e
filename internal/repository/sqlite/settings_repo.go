package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"timesheet-bot/internal/domain"
)

type SqliteSettingsRepo struct {
	db *sql.DB
}

func NewSqliteSettingsRepo(db *sql.DB) *SqliteSettingsRepo {
	return &SqliteSettingsRepo{db: db}
}

func (r *SqliteSettingsRepo) getSetting(key string) (sql.NullString, error) {
	var value sql.NullString
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return sql.NullString{}, nil
	}
	return value, err
}

// GetPayPeriod returns nil when no pay period has been stored yet.
func (r *SqliteSettingsRepo) GetPayPeriod() (*domain.PayPeriod, error) {
	start, err := r.getSetting(settingPayPeriodStart)
	if err != nil {
		return nil, err
	}
	end, err := r.getSetting(settingPayPeriodEnd)
	if err != nil {
		return nil, err
	}
	if !start.Valid || !end.Valid {
		return nil, nil
	}
	p := &domain.PayPeriod{}
	if p.StartDate, err = time.Parse(domain.DateFormat, start.String); err != nil {
		return nil, fmt.Errorf("stored start date: %w", err)
	}
	if p.EndDate, err = time.Parse(domain.DateFormat, end.String); err != nil {
		return nil, fmt.Errorf("stored end date: %w", err)
	}
	return p, nil
}

func (r *SqliteSettingsRepo) UpdatePayPeriod(p domain.PayPeriod) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := putPayPeriod(tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SqliteSettingsRepo) RollPayPeriod(p domain.PayPeriod, shifts []domain.Shift) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := putPayPeriod(tx, p); err != nil {
		return err
	}
	if err := resetShifts(tx, shifts); err != nil {
		return err
	}
	return tx.Commit()
}

func putPayPeriod(tx execer, p domain.PayPeriod) error {
	const upsert = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := tx.Exec(upsert, settingPayPeriodStart, p.StartDate.Format(domain.DateFormat)); err != nil {
		return err
	}
	_, err := tx.Exec(upsert, settingPayPeriodEnd, p.EndDate.Format(domain.DateFormat))
	return err
}
