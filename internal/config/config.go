package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vessel-propsim/internal/model"
)

// Config is the on-disk scenario shape (YAML). Configurations and the
// profile normally come from the database; inline entries override it so a
// scenario can run self-contained.
type Config struct {
	DatabasePath   string `yaml:"database_path"`
	ProfileID      int64  `yaml:"profile_id"`
	BaselineIndex  int    `yaml:"baseline_index"`
	OutputCSV      string `yaml:"output_csv"`
	LifecycleYears int    `yaml:"lifecycle_years"`

	Configurations []ConfigEntry `yaml:"configurations"`
	Profile        *ProfileEntry `yaml:"profile"`
}

// ConfigEntry is the YAML shape of one propulsion configuration.
type ConfigEntry struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	PrimaryFuel string `yaml:"primary_fuel"`
	BackupFuel  string `yaml:"backup_fuel"`

	MainEngineSFOC float64 `yaml:"main_engine_sfoc"`
	AuxEngineSFOC  float64 `yaml:"aux_engine_sfoc"`

	SFOCGas         float64 `yaml:"sfoc_gas"`
	SFOCDiesel      float64 `yaml:"sfoc_diesel"`
	LNGRatio        float64 `yaml:"lng_ratio"`
	PilotFuelSFOC   float64 `yaml:"pilot_fuel_sfoc"`
	CO2FactorBackup float64 `yaml:"co2_factor_backup"`

	BatteryCapacityKWh float64 `yaml:"battery_capacity_kwh"`
	BatteryEfficiency  float64 `yaml:"battery_efficiency"`
	MotorEfficiency    float64 `yaml:"motor_efficiency"`

	CO2Factor float64 `yaml:"co2_factor"`
	SOxFactor float64 `yaml:"sox_factor"`

	InitialCost     float64 `yaml:"initial_cost"`
	FuelPrice       float64 `yaml:"fuel_price"`
	BackupFuelPrice float64 `yaml:"backup_fuel_price"`

	PropulsiveShare float64 `yaml:"propulsive_share"`
	ElectricalShare float64 `yaml:"electrical_share"`
}

// ProfileEntry is the YAML shape of one operating profile.
type ProfileEntry struct {
	ID         int64  `yaml:"id"`
	Name       string `yaml:"name"`
	VesselType string `yaml:"vessel_type"`

	SailingHours       float64 `yaml:"sailing_hours"`
	SailingPropPowerKW float64 `yaml:"sailing_prop_power_kw"`
	SailingElecPowerKW float64 `yaml:"sailing_elec_power_kw"`

	ManeuveringHours       float64 `yaml:"maneuvering_hours"`
	ManeuveringPropPowerKW float64 `yaml:"maneuvering_prop_power_kw"`
	ManeuveringElecPowerKW float64 `yaml:"maneuvering_elec_power_kw"`

	PortHours       float64 `yaml:"port_hours"`
	PortPropPowerKW float64 `yaml:"port_prop_power_kw"`
	PortElecPowerKW float64 `yaml:"port_elec_power_kw"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = "data/vessel.db"
	}
	if c.ProfileID == 0 {
		c.ProfileID = 1
	}
	if c.LifecycleYears == 0 {
		c.LifecycleYears = 20
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.BaselineIndex < 0 {
		return errors.New("baseline_index must be >= 0")
	}
	// Validate inline entries by converting to model types.
	for i, e := range c.Configurations {
		if err := e.ToModel().Validate(); err != nil {
			return fmt.Errorf("configurations[%d] invalid: %w", i, err)
		}
	}
	if c.Profile != nil {
		if err := c.Profile.ToModel().Validate(); err != nil {
			return fmt.Errorf("profile invalid: %w", err)
		}
	}
	return nil
}

func (e ConfigEntry) ToModel() model.Config {
	return model.Config{
		ID:                 e.ID,
		Name:               e.Name,
		Type:               model.PropulsionType(e.Type),
		PrimaryFuel:        e.PrimaryFuel,
		BackupFuel:         e.BackupFuel,
		MainEngineSFOC:     e.MainEngineSFOC,
		AuxEngineSFOC:      e.AuxEngineSFOC,
		SFOCGas:            e.SFOCGas,
		SFOCDiesel:         e.SFOCDiesel,
		LNGRatio:           e.LNGRatio,
		PilotFuelSFOC:      e.PilotFuelSFOC,
		CO2FactorBackup:    e.CO2FactorBackup,
		BatteryCapacityKWh: e.BatteryCapacityKWh,
		BatteryEfficiency:  e.BatteryEfficiency,
		MotorEfficiency:    e.MotorEfficiency,
		CO2Factor:          e.CO2Factor,
		SOxFactor:          e.SOxFactor,
		InitialCost:        e.InitialCost,
		FuelPrice:          e.FuelPrice,
		BackupFuelPrice:    e.BackupFuelPrice,
		PropulsiveShare:    e.PropulsiveShare,
		ElectricalShare:    e.ElectricalShare,
	}
}

func (p ProfileEntry) ToModel() model.Profile {
	return model.Profile{
		ID:                     p.ID,
		Name:                   p.Name,
		VesselType:             p.VesselType,
		SailingHours:           p.SailingHours,
		SailingPropPowerKW:     p.SailingPropPowerKW,
		SailingElecPowerKW:     p.SailingElecPowerKW,
		ManeuveringHours:       p.ManeuveringHours,
		ManeuveringPropPowerKW: p.ManeuveringPropPowerKW,
		ManeuveringElecPowerKW: p.ManeuveringElecPowerKW,
		PortHours:              p.PortHours,
		PortPropPowerKW:        p.PortPropPowerKW,
		PortElecPowerKW:        p.PortElecPowerKW,
	}
}
