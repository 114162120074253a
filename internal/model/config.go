package model

import (
	"errors"
	"fmt"
)

// PropulsionType selects which propulsion model variant a Config describes.
type PropulsionType string

const (
	TypeConventional PropulsionType = "conventional"
	TypeDualFuel     PropulsionType = "dual-fuel"
	TypeHybrid       PropulsionType = "hybrid"
)

// Load-split defaults. The propulsive/electrical share of total power demand
// is the least physically grounded assumption in the model, so it is a
// parameter with documented defaults rather than a literal.
const (
	DefaultPropulsiveShare = 0.80
	DefaultElectricalShare = 0.20
)

// Config describes one named propulsion system. Which fields must be
// populated depends on Type; Validate enforces the match. A Config is
// treated as immutable once validated.
//
// Units:
// - SFOC figures: g/kWh
// - BatteryCapacityKWh: kWh
// - Efficiencies and ratios: 0..1
// - CO2/SOx factors: kg emitted per kg fuel burned
// - InitialCost: currency; fuel prices: currency per tonne
type Config struct {
	ID   int64
	Name string
	Type PropulsionType

	PrimaryFuel string
	BackupFuel  string

	// Conventional (and weighted bases for the other variants).
	MainEngineSFOC float64
	AuxEngineSFOC  float64

	// Dual-fuel.
	SFOCGas         float64
	SFOCDiesel      float64
	LNGRatio        float64 // fraction of operating time in gas mode
	PilotFuelSFOC   float64 // diesel pilot flame, g/kWh during gas mode
	CO2FactorBackup float64 // diesel-mode CO2 factor (CO2Factor covers the primary fuel)

	// Hybrid.
	BatteryCapacityKWh float64
	// BatteryEfficiency is carried with the reference data but not applied:
	// the port-battery model treats stored energy as fully usable.
	BatteryEfficiency float64
	MotorEfficiency   float64

	// Emissions.
	CO2Factor float64
	SOxFactor float64

	// Economics.
	InitialCost     float64
	FuelPrice       float64
	BackupFuelPrice float64

	// Power split between propulsive and electrical load. Zero values are
	// replaced with the documented defaults (0.80/0.20).
	PropulsiveShare float64
	ElectricalShare float64
}

// PropShare returns the propulsive load share, applying the default.
func (c Config) PropShare() float64 {
	if c.PropulsiveShare == 0 {
		return DefaultPropulsiveShare
	}
	return c.PropulsiveShare
}

// ElecShare returns the electrical load share, applying the default.
func (c Config) ElecShare() float64 {
	if c.ElectricalShare == 0 {
		return DefaultElectricalShare
	}
	return c.ElectricalShare
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("config name is required")
	}
	if c.CO2Factor < 0 || c.SOxFactor < 0 {
		return errors.New("emission factors must be >= 0")
	}
	if c.InitialCost < 0 {
		return errors.New("InitialCost must be >= 0")
	}
	if c.FuelPrice < 0 || c.BackupFuelPrice < 0 {
		return errors.New("fuel prices must be >= 0")
	}
	if s := c.PropShare() + c.ElecShare(); s < 0.999 || s > 1.001 {
		return fmt.Errorf("propulsive+electrical share must sum to 1, got %.3f", s)
	}

	switch c.Type {
	case TypeConventional:
		if c.MainEngineSFOC <= 0 {
			return errors.New("MainEngineSFOC must be > 0")
		}
		if c.AuxEngineSFOC <= 0 {
			return errors.New("AuxEngineSFOC must be > 0")
		}
	case TypeDualFuel:
		if c.SFOCGas <= 0 {
			return errors.New("SFOCGas must be > 0")
		}
		if c.SFOCDiesel <= 0 {
			return errors.New("SFOCDiesel must be > 0")
		}
		if c.AuxEngineSFOC <= 0 {
			return errors.New("AuxEngineSFOC must be > 0")
		}
		if c.LNGRatio < 0 || c.LNGRatio > 1 {
			return errors.New("LNGRatio must be in [0, 1]")
		}
		if c.PilotFuelSFOC < 0 {
			return errors.New("PilotFuelSFOC must be >= 0")
		}
		if c.CO2FactorBackup < 0 {
			return errors.New("CO2FactorBackup must be >= 0")
		}
	case TypeHybrid:
		if c.AuxEngineSFOC <= 0 {
			return errors.New("AuxEngineSFOC (genset SFOC) must be > 0")
		}
		if c.BatteryCapacityKWh <= 0 {
			return errors.New("BatteryCapacityKWh must be > 0")
		}
		if c.BatteryEfficiency <= 0 || c.BatteryEfficiency > 1 {
			return errors.New("BatteryEfficiency must be in (0, 1]")
		}
		if c.MotorEfficiency <= 0 || c.MotorEfficiency > 1 {
			return errors.New("MotorEfficiency must be in (0, 1]")
		}
	default:
		return fmt.Errorf("unknown propulsion type: %q", c.Type)
	}
	return nil
}
