package propulsion

import (
	"fmt"

	"vessel-propsim/internal/model"
)

// Conventional models a diesel-mechanical plant: a main engine driving the
// shaft directly plus auxiliary gensets for the electrical load. Fuel burn
// uses a single SFOC blended from the main and auxiliary figures by the
// configured load split.
type Conventional struct {
	cfg          model.Config
	weightedSFOC float64 // g/kWh
}

func NewConventional(cfg model.Config) (*Conventional, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("conventional config invalid: %w", err)
	}
	return &Conventional{
		cfg:          cfg,
		weightedSFOC: cfg.MainEngineSFOC*cfg.PropShare() + cfg.AuxEngineSFOC*cfg.ElecShare(),
	}, nil
}

func (c *Conventional) Name() string { return c.cfg.Name }

// WeightedSFOC exposes the blended figure for reporting.
func (c *Conventional) WeightedSFOC() float64 { return c.weightedSFOC }

func (c *Conventional) FuelConsumptionKg(powerKW, hours float64, _ model.Phase) float64 {
	return powerKW * hours * c.weightedSFOC / 1000
}

func (c *Conventional) Emissions(fuelKg float64) Emissions {
	return Emissions{
		CO2Kg: fuelKg * c.cfg.CO2Factor,
		SOxKg: fuelKg * c.cfg.SOxFactor,
	}
}

func (c *Conventional) FuelCost(fuelKg float64) float64 {
	return fuelKg / 1000 * c.cfg.FuelPrice
}
