package store

import (
	"context"
	"fmt"

	"vessel-propsim/internal/model"
)

// ReferenceConfigs returns the three Wärtsilä-based reference propulsion
// configurations for a short-sea tanker study.
func ReferenceConfigs() []model.Config {
	return []model.Config{
		{
			// Main: Wärtsilä 8L32 (4640 kW), Aux: 2x Wärtsilä 9L20.
			ID:             1,
			Name:           "Conventional Diesel-Mechanical",
			Type:           model.TypeConventional,
			PrimaryFuel:    "MDO",
			MainEngineSFOC: 181.0,
			AuxEngineSFOC:  195.1,
			CO2Factor:      3.206,
			SOxFactor:      0.001,
			InitialCost:    2_800_000,
			FuelPrice:      650,
		},
		{
			// Main: Wärtsilä 8V31DF (4800 kW), Aux: 2x Wärtsilä 8L20DF.
			ID:              2,
			Name:            "Dual-Fuel LNG",
			Type:            model.TypeDualFuel,
			PrimaryFuel:     "LNG",
			BackupFuel:      "MDO",
			SFOCGas:         157.5,
			SFOCDiesel:      176.9,
			AuxEngineSFOC:   172.0,
			LNGRatio:        0.95,
			PilotFuelSFOC:   5.2,
			CO2Factor:       2.75,
			CO2FactorBackup: 3.206,
			SOxFactor:       0.001,
			InitialCost:     4_200_000,
			FuelPrice:       520,
			BackupFuelPrice: 650,
		},
		{
			// Gensets: 4x Wärtsilä 8L20 (1600 kW), 1500 kWh battery.
			ID:                 3,
			Name:               "Diesel-Electric Hybrid",
			Type:               model.TypeHybrid,
			PrimaryFuel:        "MDO",
			AuxEngineSFOC:      194.5,
			BatteryCapacityKWh: 1500,
			BatteryEfficiency:  0.95,
			MotorEfficiency:    0.97,
			CO2Factor:          3.206,
			SOxFactor:          0.001,
			InitialCost:        3_900_000,
			FuelPrice:          650,
		},
	}
}

// ReferenceProfiles returns the reference annual operating profiles.
func ReferenceProfiles() []model.Profile {
	return []model.Profile{
		{
			// 65% sailing / 5% maneuvering / 30% port of 8760 hours.
			ID:                     1,
			Name:                   "Short-Sea Tanker Route",
			VesselType:             "Short-Sea Tanker",
			SailingHours:           5694,
			SailingPropPowerKW:     3200,
			SailingElecPowerKW:     378,
			ManeuveringHours:       438,
			ManeuveringPropPowerKW: 1200,
			ManeuveringElecPowerKW: 400,
			PortHours:              2628,
			PortPropPowerKW:        0,
			PortElecPowerKW:        450,
		},
		{
			ID:                     2,
			Name:                   "Coastal Ferry Route",
			VesselType:             "Coastal Ferry",
			SailingHours:           4380,
			SailingPropPowerKW:     2400,
			SailingElecPowerKW:     350,
			ManeuveringHours:       876,
			ManeuveringPropPowerKW: 900,
			ManeuveringElecPowerKW: 350,
			PortHours:              3504,
			PortPropPowerKW:        0,
			PortElecPowerKW:        300,
		},
	}
}

// Seed inserts the reference configurations and profiles if the database is
// empty. Idempotent: an already-populated database is left untouched.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM propulsion_configs`).Scan(&count); err != nil {
		return fmt.Errorf("count configurations: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range ReferenceConfigs() {
		if err := s.insertConfig(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range ReferenceProfiles() {
		if err := s.insertProfile(ctx, p); err != nil {
			return err
		}
	}
	s.log.Info().
		Int("configurations", len(ReferenceConfigs())).
		Int("profiles", len(ReferenceProfiles())).
		Msg("seeded reference data")
	return nil
}

func (s *Store) insertConfig(ctx context.Context, c model.Config) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO propulsion_configs (
			id, name, type, primary_fuel, backup_fuel,
			main_engine_sfoc, aux_engine_sfoc,
			sfoc_gas, sfoc_diesel, lng_ratio, pilot_fuel_sfoc, co2_factor_backup,
			battery_capacity_kwh, battery_efficiency, motor_efficiency,
			co2_factor, sox_factor,
			initial_cost, fuel_price, backup_fuel_price,
			propulsive_share, electrical_share
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, string(c.Type), c.PrimaryFuel, c.BackupFuel,
		c.MainEngineSFOC, c.AuxEngineSFOC,
		c.SFOCGas, c.SFOCDiesel, c.LNGRatio, c.PilotFuelSFOC, c.CO2FactorBackup,
		c.BatteryCapacityKWh, c.BatteryEfficiency, c.MotorEfficiency,
		c.CO2Factor, c.SOxFactor,
		c.InitialCost, c.FuelPrice, c.BackupFuelPrice,
		c.PropulsiveShare, c.ElectricalShare,
	)
	if err != nil {
		return fmt.Errorf("insert configuration %q: %w", c.Name, err)
	}
	return nil
}

func (s *Store) insertProfile(ctx context.Context, p model.Profile) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO operating_profiles (
			id, name, vessel_type,
			sailing_hours, sailing_prop_power_kw, sailing_elec_power_kw,
			maneuvering_hours, maneuvering_prop_power_kw, maneuvering_elec_power_kw,
			port_hours, port_prop_power_kw, port_elec_power_kw
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.VesselType,
		p.SailingHours, p.SailingPropPowerKW, p.SailingElecPowerKW,
		p.ManeuveringHours, p.ManeuveringPropPowerKW, p.ManeuveringElecPowerKW,
		p.PortHours, p.PortPropPowerKW, p.PortElecPowerKW,
	)
	if err != nil {
		return fmt.Errorf("insert profile %q: %w", p.Name, err)
	}
	return nil
}
