package simulator

import "vessel-propsim/internal/model"

// PhaseBreakdown is one phase's share of an annual simulation.
type PhaseBreakdown struct {
	Phase   model.Phase
	Hours   float64
	PowerKW float64 // combined propulsive + electrical demand
	FuelKg  float64
	// Percentage of total annual fuel mass; 0 when the total is 0.
	Percentage float64
}

// VsBaseline holds relative performance against the baseline configuration.
// Sign conventions differ on purpose: positive reductions mean the
// alternative burns/emits less, while a positive cost difference means it is
// more expensive. Downstream formatting depends on this asymmetry.
type VsBaseline struct {
	FuelReductionPct  float64
	CO2ReductionPct   float64
	CostDifferencePct float64
	IsBaseline        bool
}

// Result is the aggregated output of one (Config, Profile) simulation.
// It is read-only after creation except for the VsBaseline block, which
// RelativePerformance attaches post hoc.
type Result struct {
	ConfigID      int64
	Configuration string
	ProfileID     int64

	TotalFuelKg float64
	TotalCO2Kg  float64
	TotalSOxKg  float64

	FuelCost          float64
	AnnualCapitalCost float64
	TotalAnnualCost   float64

	Breakdown []PhaseBreakdown

	TotalOperatingHours float64
	AveragePowerKW      float64

	VsBaseline *VsBaseline
}

func (r *Result) TotalFuelTonnes() float64 { return r.TotalFuelKg / 1000 }
func (r *Result) TotalCO2Tonnes() float64  { return r.TotalCO2Kg / 1000 }
func (r *Result) TotalSOxTonnes() float64  { return r.TotalSOxKg / 1000 }

// PhaseFuelKg returns the fuel mass attributed to one phase, 0 if absent.
func (r *Result) PhaseFuelKg(phase model.Phase) float64 {
	for _, b := range r.Breakdown {
		if b.Phase == phase {
			return b.FuelKg
		}
	}
	return 0
}
