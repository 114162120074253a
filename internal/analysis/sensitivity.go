package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"vessel-propsim/internal/model"
	"vessel-propsim/internal/simulator"
)

// SensitivityPoint is one fuel-price scenario in a sweep.
type SensitivityPoint struct {
	Multiplier      float64 // factor applied to the configured fuel prices
	FuelCost        float64
	TotalAnnualCost float64
}

// Sensitivity summarizes how a configuration's annual cost responds to fuel
// price. Slope is the regression slope of total annual cost against the
// price multiplier ($ per unit multiplier); for this model the relationship
// is exactly linear, so the slope equals the annual fuel cost at the
// configured price.
type Sensitivity struct {
	Configuration string
	Points        []SensitivityPoint

	Slope    float64
	MeanCost float64
	MinCost  float64
	MaxCost  float64
}

// FuelPriceSensitivity sweeps fuel-price multipliers for one configuration,
// scaling both the primary and backup fuel prices.
func FuelPriceSensitivity(sim *simulator.Simulator, cfg model.Config, profile model.Profile, multipliers []float64) (*Sensitivity, error) {
	if len(multipliers) == 0 {
		return nil, fmt.Errorf("no multipliers")
	}

	points := make([]SensitivityPoint, 0, len(multipliers))
	xs := make([]float64, 0, len(multipliers))
	ys := make([]float64, 0, len(multipliers))

	for _, m := range multipliers {
		if m < 0 {
			return nil, fmt.Errorf("multiplier must be >= 0, got %g", m)
		}
		scaled := cfg
		scaled.FuelPrice = cfg.FuelPrice * m
		scaled.BackupFuelPrice = cfg.BackupFuelPrice * m

		res, err := sim.Simulate(scaled, profile)
		if err != nil {
			return nil, fmt.Errorf("multiplier %g: %w", m, err)
		}
		points = append(points, SensitivityPoint{
			Multiplier:      m,
			FuelCost:        res.FuelCost,
			TotalAnnualCost: res.TotalAnnualCost,
		})
		xs = append(xs, m)
		ys = append(ys, res.TotalAnnualCost)
	}

	out := &Sensitivity{
		Configuration: cfg.Name,
		Points:        points,
		MeanCost:      stat.Mean(ys, nil),
		MinCost:       floats.Min(ys),
		MaxCost:       floats.Max(ys),
	}
	if len(xs) > 1 {
		_, out.Slope = stat.LinearRegression(xs, ys, nil, false)
	}
	return out, nil
}
