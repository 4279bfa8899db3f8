package storage

import (
	"database/sql"
	"fmt"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

// SQLiteDB keeps the lookup history in a local file. Only request metadata
// is stored; the fetched series never touches disk.
type SQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteDB(cfg *models.MConfig, log *logger.Logger) (*SQLiteDB, error) {
	return &SQLiteDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return helpers.NewDatabaseError("failed to open sqlite database", err)
	}

	if err := db.Ping(); err != nil {
		return helpers.NewDatabaseError("failed to reach sqlite database", err)
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) createTables() error {
	// Lookup history survives restarts; the recent-symbols list should not
	// reset with the process.
	query := `
		CREATE TABLE IF NOT EXISTS lookups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL,
			period TEXT NOT NULL,
			interval TEXT NOT NULL,
			window INTEGER NOT NULL,
			std_dev REAL NOT NULL,
			bar_count INTEGER NOT NULL,
			requested_at TIMESTAMP NOT NULL
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

func (d *SQLiteDB) RecordLookup(lookup models.MLookup) error {
	_, err := d.DB.Exec(`
		INSERT INTO lookups (symbol, period, interval, window, std_dev, bar_count, requested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, lookup.Symbol, lookup.Period, lookup.Interval, lookup.Window, lookup.StdDev, lookup.BarCount, lookup.RequestedAt)

	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteDB) RecentLookups(limit int) ([]models.MLookup, error) {
	rows, err := d.DB.Query(`
		SELECT symbol, period, interval, window, std_dev, bar_count, requested_at
		FROM lookups
		ORDER BY requested_at DESC, id DESC
		LIMIT ?
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

func (d *SQLiteDB) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
