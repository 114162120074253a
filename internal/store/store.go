// Package store persists propulsion configurations, operating profiles, and
// simulation result rows in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store wraps the database connection. The simulation core never touches it;
// callers read inputs from it before simulating and write result rows after.
type Store struct {
	conn *sql.DB
	path string
	log  zerolog.Logger
}

// Open opens (creating if needed) the vessel database at path. Use a
// "file:...?mode=memory" URI for tests.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if !strings.HasPrefix(path, "file:") {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		path = abs
	}

	conn, err := sql.Open("sqlite", connString(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc.org/sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY churn for this workload.
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{conn: conn, path: path, log: log}, nil
}

func connString(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
}

// Init creates the schema if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	s.log.Debug().Str("path", s.path).Msg("schema initialized")
	return nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS propulsion_configs (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		primary_fuel TEXT NOT NULL DEFAULT '',
		backup_fuel TEXT NOT NULL DEFAULT '',
		main_engine_sfoc REAL NOT NULL DEFAULT 0,
		aux_engine_sfoc REAL NOT NULL DEFAULT 0,
		sfoc_gas REAL NOT NULL DEFAULT 0,
		sfoc_diesel REAL NOT NULL DEFAULT 0,
		lng_ratio REAL NOT NULL DEFAULT 0,
		pilot_fuel_sfoc REAL NOT NULL DEFAULT 0,
		co2_factor_backup REAL NOT NULL DEFAULT 0,
		battery_capacity_kwh REAL NOT NULL DEFAULT 0,
		battery_efficiency REAL NOT NULL DEFAULT 0,
		motor_efficiency REAL NOT NULL DEFAULT 0,
		co2_factor REAL NOT NULL DEFAULT 0,
		sox_factor REAL NOT NULL DEFAULT 0,
		initial_cost REAL NOT NULL DEFAULT 0,
		fuel_price REAL NOT NULL DEFAULT 0,
		backup_fuel_price REAL NOT NULL DEFAULT 0,
		propulsive_share REAL NOT NULL DEFAULT 0,
		electrical_share REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS operating_profiles (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		vessel_type TEXT NOT NULL DEFAULT '',
		sailing_hours REAL NOT NULL,
		sailing_prop_power_kw REAL NOT NULL,
		sailing_elec_power_kw REAL NOT NULL,
		maneuvering_hours REAL NOT NULL,
		maneuvering_prop_power_kw REAL NOT NULL,
		maneuvering_elec_power_kw REAL NOT NULL,
		port_hours REAL NOT NULL,
		port_prop_power_kw REAL NOT NULL,
		port_elec_power_kw REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS simulation_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		config_id INTEGER NOT NULL REFERENCES propulsion_configs(id),
		profile_id INTEGER NOT NULL REFERENCES operating_profiles(id),
		total_fuel_kg REAL NOT NULL,
		total_co2_tonnes REAL NOT NULL,
		total_sox_tonnes REAL NOT NULL,
		fuel_cost REAL NOT NULL,
		annual_capital_cost REAL NOT NULL,
		total_annual_cost REAL NOT NULL,
		sailing_fuel_kg REAL NOT NULL,
		maneuvering_fuel_kg REAL NOT NULL,
		port_fuel_kg REAL NOT NULL
	)`,
}
