package propulsion

import "vessel-propsim/internal/model"

// Emissions is the mass of pollutants produced by burning a given fuel mass.
type Emissions struct {
	CO2Kg float64
	SOxKg float64
}

func (e Emissions) CO2Tonnes() float64 { return e.CO2Kg / 1000 }
func (e Emissions) SOxTonnes() float64 { return e.SOxKg / 1000 }

// System is the capability set shared by all propulsion variants.
//
// Methods are pure and perform no input validation: power and hours are
// assumed non-negative (the simulator validates the profile before calling).
type System interface {
	Name() string

	// FuelConsumptionKg returns the fuel mass (kg) burned to meet the given
	// combined power demand (kW) for the given duration (hours) in a phase.
	// Formula base: fuel_kg = power_kw * hours * SFOC(g/kWh) / 1000.
	FuelConsumptionKg(powerKW, hours float64, phase model.Phase) float64

	// Emissions converts a fuel mass into CO2 and SOx masses.
	Emissions(fuelKg float64) Emissions

	// FuelCost prices a fuel mass in the configured currency unit.
	FuelCost(fuelKg float64) float64
}
