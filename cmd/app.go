package main

import (
	"database/sql"
	"log"
	"time"

	"timesheet-bot/config"
	"timesheet-bot/internal/app/service"
	"timesheet-bot/internal/repository/sqlite"
	"timesheet-bot/pkg/workerpool"
)

// app holds the opened database and the services built on it.
type app struct {
	cfg       *config.Config
	db        *sql.DB
	pool      *workerpool.WorkerPool
	periods   *service.PayPeriodService
	employees *service.EmployeeService
	reports   *service.ReportService
	async     *service.AsyncService
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := sqlite.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	settingsRepo := sqlite.NewSqliteSettingsRepo(db)
	employeeRepo := sqlite.NewSqliteEmployeeRepo(db)
	periods := service.NewPayPeriodService(settingsRepo)
	if _, err := periods.EnsureDefault(time.Now()); err != nil {
		db.Close()
		return nil, err
	}

	pool := workerpool.NewWorkerPool(cfg.ExportWorkers, 8)
	log.Printf("[app] database %s ready", cfg.DBPath)
	return &app{
		cfg:       cfg,
		db:        db,
		pool:      pool,
		periods:   periods,
		employees: service.NewEmployeeService(employeeRepo, periods),
		reports:   service.NewReportService(employeeRepo, cfg.CompanyName),
		async:     service.NewAsyncService(pool),
	}, nil
}

func (a *app) Close() {
	a.pool.Close()
	if err := a.db.Close(); err != nil {
		log.Printf("[app] close database: %v", err)
	}
}
