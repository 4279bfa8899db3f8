package storage

import (
	"database/sql"
	"fmt"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

// PostgresDB is the shared-deployment variant of the lookup store, selected
// with storage.db_type: postgres.
type PostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresDB(cfg *models.MConfig, log *logger.Logger) (*PostgresDB, error) {
	return &PostgresDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	dsn := d.Config.Storage.DBConnectionString

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return helpers.NewDatabaseError("failed to open postgres database", err)
	}

	if err := db.Ping(); err != nil {
		return helpers.NewDatabaseError("failed to reach postgres database", err)
	}

	d.DB = db

	query := `
		CREATE TABLE IF NOT EXISTS lookups (
			id SERIAL PRIMARY KEY,
			symbol TEXT NOT NULL,
			period TEXT NOT NULL,
			interval TEXT NOT NULL,
			bb_window INTEGER NOT NULL,
			std_dev DOUBLE PRECISION NOT NULL,
			bar_count INTEGER NOT NULL,
			requested_at TIMESTAMPTZ NOT NULL
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create lookups: %w", err)
	}

	if _, err := d.DB.Exec(`CREATE INDEX IF NOT EXISTS idx_lookups_requested_at ON lookups (requested_at DESC)`); err != nil {
		return fmt.Errorf("failed to create lookup index: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) RecordLookup(lookup models.MLookup) error {
	_, err := d.DB.Exec(`
		INSERT INTO lookups (symbol, period, interval, bb_window, std_dev, bar_count, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, lookup.Symbol, lookup.Period, lookup.Interval, lookup.Window, lookup.StdDev, lookup.BarCount, lookup.RequestedAt)

	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) RecentLookups(limit int) ([]models.MLookup, error) {
	rows, err := d.DB.Query(`
		SELECT symbol, period, interval, bb_window, std_dev, bar_count, requested_at
		FROM lookups
		ORDER BY requested_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var lookups []models.MLookup
	for rows.Next() {
		var l models.MLookup
		if err := rows.Scan(&l.Symbol, &l.Period, &l.Interval, &l.Window, &l.StdDev, &l.BarCount, &l.RequestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		lookups = append(lookups, l)
	}

	return lookups, rows.Err()
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
