package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vessel-propsim/internal/model"
	"vessel-propsim/internal/simulator"
)

const configColumns = `id, name, type, primary_fuel, backup_fuel,
	main_engine_sfoc, aux_engine_sfoc,
	sfoc_gas, sfoc_diesel, lng_ratio, pilot_fuel_sfoc, co2_factor_backup,
	battery_capacity_kwh, battery_efficiency, motor_efficiency,
	co2_factor, sox_factor,
	initial_cost, fuel_price, backup_fuel_price,
	propulsive_share, electrical_share`

// Configurations fetches all propulsion configurations, ordered by id.
func (s *Store) Configurations(ctx context.Context) ([]model.Config, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+configColumns+` FROM propulsion_configs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query configurations: %w", err)
	}
	defer rows.Close()

	var out []model.Config
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// Configuration fetches one configuration by id.
func (s *Store) Configuration(ctx context.Context, id int64) (model.Config, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+configColumns+` FROM propulsion_configs WHERE id = ?`, id)
	cfg, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return model.Config{}, fmt.Errorf("configuration %d not found", id)
	}
	return cfg, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(r rowScanner) (model.Config, error) {
	var c model.Config
	var typ string
	err := r.Scan(
		&c.ID, &c.Name, &typ, &c.PrimaryFuel, &c.BackupFuel,
		&c.MainEngineSFOC, &c.AuxEngineSFOC,
		&c.SFOCGas, &c.SFOCDiesel, &c.LNGRatio, &c.PilotFuelSFOC, &c.CO2FactorBackup,
		&c.BatteryCapacityKWh, &c.BatteryEfficiency, &c.MotorEfficiency,
		&c.CO2Factor, &c.SOxFactor,
		&c.InitialCost, &c.FuelPrice, &c.BackupFuelPrice,
		&c.PropulsiveShare, &c.ElectricalShare,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Config{}, err
		}
		return model.Config{}, fmt.Errorf("scan configuration: %w", err)
	}
	c.Type = model.PropulsionType(typ)
	return c, nil
}

const profileColumns = `id, name, vessel_type,
	sailing_hours, sailing_prop_power_kw, sailing_elec_power_kw,
	maneuvering_hours, maneuvering_prop_power_kw, maneuvering_elec_power_kw,
	port_hours, port_prop_power_kw, port_elec_power_kw`

// Profiles fetches all operating profiles, ordered by id.
func (s *Store) Profiles(ctx context.Context) ([]model.Profile, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM operating_profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Profile fetches one operating profile by id.
func (s *Store) Profile(ctx context.Context, id int64) (model.Profile, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM operating_profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return model.Profile{}, fmt.Errorf("profile %d not found", id)
	}
	return p, err
}

func scanProfile(r rowScanner) (model.Profile, error) {
	var p model.Profile
	err := r.Scan(
		&p.ID, &p.Name, &p.VesselType,
		&p.SailingHours, &p.SailingPropPowerKW, &p.SailingElecPowerKW,
		&p.ManeuveringHours, &p.ManeuveringPropPowerKW, &p.ManeuveringElecPowerKW,
		&p.PortHours, &p.PortPropPowerKW, &p.PortElecPowerKW,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Profile{}, err
		}
		return model.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

// ResultRow is the flattened persistence shape of a simulation result.
type ResultRow struct {
	ID                int64
	CreatedAt         time.Time
	ConfigID          int64
	ProfileID         int64
	TotalFuelKg       float64
	TotalCO2Tonnes    float64
	TotalSOxTonnes    float64
	FuelCost          float64
	AnnualCapitalCost float64
	TotalAnnualCost   float64
	SailingFuelKg     float64
	ManeuveringFuelKg float64
	PortFuelKg        float64
}

// SaveResult flattens a simulation result into one row.
func (s *Store) SaveResult(ctx context.Context, res *simulator.Result) (int64, error) {
	out, err := s.conn.ExecContext(ctx, `
		INSERT INTO simulation_results (
			created_at, config_id, profile_id,
			total_fuel_kg, total_co2_tonnes, total_sox_tonnes,
			fuel_cost, annual_capital_cost, total_annual_cost,
			sailing_fuel_kg, maneuvering_fuel_kg, port_fuel_kg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		res.ConfigID, res.ProfileID,
		res.TotalFuelKg, res.TotalCO2Tonnes(), res.TotalSOxTonnes(),
		res.FuelCost, res.AnnualCapitalCost, res.TotalAnnualCost,
		res.PhaseFuelKg(model.PhaseSailing),
		res.PhaseFuelKg(model.PhaseManeuvering),
		res.PhaseFuelKg(model.PhasePort),
	)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result id: %w", err)
	}
	s.log.Debug().Int64("result_id", id).Int64("config_id", res.ConfigID).Msg("result saved")
	return id, nil
}

// Results fetches all persisted result rows, newest first.
func (s *Store) Results(ctx context.Context) ([]ResultRow, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, created_at, config_id, profile_id,
			total_fuel_kg, total_co2_tonnes, total_sox_tonnes,
			fuel_cost, annual_capital_cost, total_annual_cost,
			sailing_fuel_kg, maneuvering_fuel_kg, port_fuel_kg
		FROM simulation_results ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRow
	for rows.Next() {
		var r ResultRow
		var createdAt string
		if err := rows.Scan(
			&r.ID, &createdAt, &r.ConfigID, &r.ProfileID,
			&r.TotalFuelKg, &r.TotalCO2Tonnes, &r.TotalSOxTonnes,
			&r.FuelCost, &r.AnnualCapitalCost, &r.TotalAnnualCost,
			&r.SailingFuelKg, &r.ManeuveringFuelKg, &r.PortFuelKg,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
