package propulsion

import (
	"fmt"

	"vessel-propsim/internal/model"
)

// Hybrid models a diesel-electric plant: gensets feed an electric motor for
// propulsion (with conversion loss) plus the hotel load directly. In port
// the battery substitutes for genset fuel burn up to its stored energy.
type Hybrid struct {
	cfg model.Config
}

func NewHybrid(cfg model.Config) (*Hybrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hybrid config invalid: %w", err)
	}
	return &Hybrid{cfg: cfg}, nil
}

func (h *Hybrid) Name() string { return h.cfg.Name }

func (h *Hybrid) FuelConsumptionKg(powerKW, hours float64, phase model.Phase) float64 {
	if powerKW <= 0 || hours <= 0 {
		return 0
	}

	// Propulsive power passes through the electric motor; gensets must make
	// up the conversion loss. The electrical load is served at face value.
	propulsionKW := powerKW * h.cfg.PropShare()
	electricKW := powerKW * h.cfg.ElecShare()
	gensetKW := propulsionKW/h.cfg.MotorEfficiency + electricKW

	gensetHours := hours
	if phase == model.PhasePort {
		// The battery covers port operation until its stored energy runs out.
		batteryHours := h.cfg.BatteryCapacityKWh / powerKW
		if batteryHours > hours {
			batteryHours = hours
		}
		gensetHours = hours - batteryHours
	}

	return gensetKW * gensetHours * h.cfg.AuxEngineSFOC / 1000
}

func (h *Hybrid) Emissions(fuelKg float64) Emissions {
	return Emissions{
		CO2Kg: fuelKg * h.cfg.CO2Factor,
		SOxKg: fuelKg * h.cfg.SOxFactor,
	}
}

func (h *Hybrid) FuelCost(fuelKg float64) float64 {
	return fuelKg / 1000 * h.cfg.FuelPrice
}
