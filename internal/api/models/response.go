package models

import (
	"time"

	"vessel-propsim/internal/analysis"
	"vessel-propsim/internal/simulator"
)

// SimulateResponse is the body returned by POST /api/v1/simulate.
type SimulateResponse struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Result ResultPayload `json:"result"`
}

// CompareResponse is the body returned by POST /api/v1/compare.
type CompareResponse struct {
	ID      string          `json:"id"`
	Status  string          `json:"status"`
	Results []ResultPayload `json:"results"`
}

// ResultPayload is the JSON shape of one simulation result.
type ResultPayload struct {
	ConfigID      int64  `json:"config_id"`
	Configuration string `json:"configuration"`
	ProfileID     int64  `json:"profile_id,omitempty"`

	TotalFuelKg     float64 `json:"total_fuel_kg"`
	TotalFuelTonnes float64 `json:"total_fuel_tonnes"`
	TotalCO2Tonnes  float64 `json:"total_co2_tonnes"`
	TotalSOxTonnes  float64 `json:"total_sox_tonnes"`

	FuelCost          float64 `json:"fuel_cost"`
	AnnualCapitalCost float64 `json:"annual_capital_cost"`
	TotalAnnualCost   float64 `json:"total_annual_cost"`

	TotalOperatingHours float64 `json:"total_operating_hours"`
	AveragePowerKW      float64 `json:"average_power_kw"`

	Breakdown  []PhasePayload     `json:"breakdown"`
	VsBaseline *VsBaselinePayload `json:"vs_baseline,omitempty"`
}

// PhasePayload is one phase's share of a result.
type PhasePayload struct {
	Phase      string  `json:"phase"`
	Hours      float64 `json:"hours"`
	PowerKW    float64 `json:"power_kw"`
	FuelKg     float64 `json:"fuel_kg"`
	Percentage float64 `json:"percentage"`
}

// VsBaselinePayload mirrors the relative-performance block. The sign
// conventions are part of the contract: positive reduction = better,
// positive cost difference = more expensive.
type VsBaselinePayload struct {
	FuelReductionPct  float64 `json:"fuel_reduction_pct"`
	CO2ReductionPct   float64 `json:"co2_reduction_pct"`
	CostDifferencePct float64 `json:"cost_difference_pct"`
	IsBaseline        bool    `json:"is_baseline"`
}

// SensitivityResponse is the body returned by POST /api/v1/sensitivity.
type SensitivityResponse struct {
	ID            string                    `json:"id"`
	Status        string                    `json:"status"`
	Configuration string                    `json:"configuration"`
	Points        []SensitivityPointPayload `json:"points"`
	Slope         float64                   `json:"slope"`
	MeanCost      float64                   `json:"mean_cost"`
	MinCost       float64                   `json:"min_cost"`
	MaxCost       float64                   `json:"max_cost"`
}

// SensitivityPointPayload is one fuel-price scenario in a sweep.
type SensitivityPointPayload struct {
	Multiplier      float64 `json:"multiplier"`
	FuelCost        float64 `json:"fuel_cost"`
	TotalAnnualCost float64 `json:"total_annual_cost"`
}

// StoredResult is one persisted result row.
type StoredResult struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	ConfigID          int64     `json:"config_id"`
	ProfileID         int64     `json:"profile_id"`
	TotalFuelKg       float64   `json:"total_fuel_kg"`
	TotalCO2Tonnes    float64   `json:"total_co2_tonnes"`
	TotalSOxTonnes    float64   `json:"total_sox_tonnes"`
	FuelCost          float64   `json:"fuel_cost"`
	AnnualCapitalCost float64   `json:"annual_capital_cost"`
	TotalAnnualCost   float64   `json:"total_annual_cost"`
	SailingFuelKg     float64   `json:"sailing_fuel_kg"`
	ManeuveringFuelKg float64   `json:"maneuvering_fuel_kg"`
	PortFuelKg        float64   `json:"port_fuel_kg"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func SensitivityResponseFrom(id string, s *analysis.Sensitivity) SensitivityResponse {
	points := make([]SensitivityPointPayload, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, SensitivityPointPayload{
			Multiplier:      p.Multiplier,
			FuelCost:        p.FuelCost,
			TotalAnnualCost: p.TotalAnnualCost,
		})
	}
	return SensitivityResponse{
		ID:            id,
		Status:        "completed",
		Configuration: s.Configuration,
		Points:        points,
		Slope:         s.Slope,
		MeanCost:      s.MeanCost,
		MinCost:       s.MinCost,
		MaxCost:       s.MaxCost,
	}
}

func ResultPayloadFrom(r *simulator.Result) ResultPayload {
	breakdown := make([]PhasePayload, 0, len(r.Breakdown))
	for _, b := range r.Breakdown {
		breakdown = append(breakdown, PhasePayload{
			Phase:      string(b.Phase),
			Hours:      b.Hours,
			PowerKW:    b.PowerKW,
			FuelKg:     b.FuelKg,
			Percentage: b.Percentage,
		})
	}

	out := ResultPayload{
		ConfigID:            r.ConfigID,
		Configuration:       r.Configuration,
		ProfileID:           r.ProfileID,
		TotalFuelKg:         r.TotalFuelKg,
		TotalFuelTonnes:     r.TotalFuelTonnes(),
		TotalCO2Tonnes:      r.TotalCO2Tonnes(),
		TotalSOxTonnes:      r.TotalSOxTonnes(),
		FuelCost:            r.FuelCost,
		AnnualCapitalCost:   r.AnnualCapitalCost,
		TotalAnnualCost:     r.TotalAnnualCost,
		TotalOperatingHours: r.TotalOperatingHours,
		AveragePowerKW:      r.AveragePowerKW,
		Breakdown:           breakdown,
	}
	if r.VsBaseline != nil {
		out.VsBaseline = &VsBaselinePayload{
			FuelReductionPct:  r.VsBaseline.FuelReductionPct,
			CO2ReductionPct:   r.VsBaseline.CO2ReductionPct,
			CostDifferencePct: r.VsBaseline.CostDifferencePct,
			IsBaseline:        r.VsBaseline.IsBaseline,
		}
	}
	return out
}
