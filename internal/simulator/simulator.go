package simulator

import (
	"errors"
	"fmt"
	"math"

	"vessel-propsim/internal/model"
	"vessel-propsim/internal/propulsion"
)

// Capital amortization defaults: capital-recovery-factor over a 20-year
// lifespan at a 5% discount rate.
const (
	DefaultDiscountRate  = 0.05
	DefaultLifespanYears = 20
)

// ErrZeroBaseline is returned when relative performance would divide by a
// zero baseline total.
var ErrZeroBaseline = errors.New("baseline total is zero")

// Simulator runs annual voyage simulations. It holds no state between calls;
// the fields only parametrize capital amortization.
type Simulator struct {
	DiscountRate  float64
	LifespanYears int
}

func New() *Simulator {
	return &Simulator{
		DiscountRate:  DefaultDiscountRate,
		LifespanYears: DefaultLifespanYears,
	}
}

// Simulate runs one configuration through one annual operating profile:
// a fuel-mass call per phase, then emissions, fuel cost, and amortized
// capital cost on the annual total.
func (s *Simulator) Simulate(cfg model.Config, profile model.Profile) (*Result, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q invalid: %w", profile.Name, err)
	}

	system, err := propulsion.New(cfg)
	if err != nil {
		return nil, err
	}

	loads := profile.PhaseLoads()
	breakdown := make([]PhaseBreakdown, 0, len(loads))

	totalFuelKg := 0.0
	weightedPowerHours := 0.0
	for _, l := range loads {
		fuelKg := system.FuelConsumptionKg(l.TotalPowerKW(), l.Hours, l.Phase)
		totalFuelKg += fuelKg
		weightedPowerHours += l.TotalPowerKW() * l.Hours
		breakdown = append(breakdown, PhaseBreakdown{
			Phase:   l.Phase,
			Hours:   l.Hours,
			PowerKW: l.TotalPowerKW(),
			FuelKg:  fuelKg,
		})
	}
	for i := range breakdown {
		if totalFuelKg > 0 {
			breakdown[i].Percentage = breakdown[i].FuelKg / totalFuelKg * 100
		}
	}

	emissions := system.Emissions(totalFuelKg)
	fuelCost := system.FuelCost(totalFuelKg)

	crf := capitalRecoveryFactor(s.discountRate(), s.lifespanYears())
	annualCapital := cfg.InitialCost * crf

	totalHours := profile.TotalHours()
	avgPowerKW := 0.0
	if totalHours > 0 {
		avgPowerKW = weightedPowerHours / totalHours
	}

	return &Result{
		ConfigID:            cfg.ID,
		Configuration:       cfg.Name,
		ProfileID:           profile.ID,
		TotalFuelKg:         totalFuelKg,
		TotalCO2Kg:          emissions.CO2Kg,
		TotalSOxKg:          emissions.SOxKg,
		FuelCost:            fuelCost,
		AnnualCapitalCost:   annualCapital,
		TotalAnnualCost:     fuelCost + annualCapital,
		Breakdown:           breakdown,
		TotalOperatingHours: totalHours,
		AveragePowerKW:      avgPowerKW,
	}, nil
}

// Compare runs Simulate once per configuration, preserving the given order.
// A failing configuration aborts the whole comparison; the caller decides
// whether to retry without it.
func (s *Simulator) Compare(cfgs []model.Config, profile model.Profile) ([]*Result, error) {
	results := make([]*Result, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := s.Simulate(cfg, profile)
		if err != nil {
			return nil, fmt.Errorf("configuration %q: %w", cfg.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// RelativePerformance attaches a VsBaseline block to every result: zeroes
// with the baseline flag for the baseline entry, percentage deltas for the
// rest. See VsBaseline for the sign conventions.
func RelativePerformance(results []*Result, baselineIdx int) error {
	if baselineIdx < 0 || baselineIdx >= len(results) {
		return fmt.Errorf("baseline index %d out of range (have %d results)", baselineIdx, len(results))
	}
	baseline := results[baselineIdx]
	if baseline.TotalFuelKg == 0 || baseline.TotalCO2Kg == 0 || baseline.TotalAnnualCost == 0 {
		return fmt.Errorf("%w: configuration %q", ErrZeroBaseline, baseline.Configuration)
	}

	for i, r := range results {
		if i == baselineIdx {
			r.VsBaseline = &VsBaseline{IsBaseline: true}
			continue
		}
		r.VsBaseline = &VsBaseline{
			FuelReductionPct:  (baseline.TotalFuelKg - r.TotalFuelKg) / baseline.TotalFuelKg * 100,
			CO2ReductionPct:   (baseline.TotalCO2Kg - r.TotalCO2Kg) / baseline.TotalCO2Kg * 100,
			CostDifferencePct: (r.TotalAnnualCost - baseline.TotalAnnualCost) / baseline.TotalAnnualCost * 100,
		}
	}
	return nil
}

func (s *Simulator) discountRate() float64 {
	if s.DiscountRate == 0 {
		return DefaultDiscountRate
	}
	return s.DiscountRate
}

func (s *Simulator) lifespanYears() int {
	if s.LifespanYears == 0 {
		return DefaultLifespanYears
	}
	return s.LifespanYears
}

// capitalRecoveryFactor converts a one-time capital cost into an equivalent
// uniform annual cost: CRF = r(1+r)^n / ((1+r)^n - 1).
func capitalRecoveryFactor(r float64, n int) float64 {
	growth := math.Pow(1+r, float64(n))
	return r * growth / (growth - 1)
}
