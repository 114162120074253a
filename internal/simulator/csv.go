package simulator

import (
	"encoding/csv"
	"os"
	"strconv"

	"vessel-propsim/internal/model"
)

// WriteResultsCSV writes one flattened row per comparison result. This is
// the primary artifact for "what came out" of a comparison run.
func WriteResultsCSV(path string, results []*Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"configuration",
		"config_id",
		"total_fuel_kg",
		"total_co2_kg",
		"total_sox_kg",
		"fuel_cost",
		"annual_capital_cost",
		"total_annual_cost",
	}
	for _, ph := range model.Phases() {
		header = append(header, string(ph)+"_fuel_kg")
	}
	header = append(header,
		"fuel_reduction_pct",
		"co2_reduction_pct",
		"cost_difference_pct",
		"is_baseline",
	)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		fuelRed, co2Red, costDiff, isBaseline := "", "", "", ""
		if r.VsBaseline != nil {
			fuelRed = fmtFloat(r.VsBaseline.FuelReductionPct)
			co2Red = fmtFloat(r.VsBaseline.CO2ReductionPct)
			costDiff = fmtFloat(r.VsBaseline.CostDifferencePct)
			isBaseline = strconv.FormatBool(r.VsBaseline.IsBaseline)
		}
		row := []string{
			r.Configuration,
			strconv.FormatInt(r.ConfigID, 10),
			fmtFloat(r.TotalFuelKg),
			fmtFloat(r.TotalCO2Kg),
			fmtFloat(r.TotalSOxKg),
			fmtFloat(r.FuelCost),
			fmtFloat(r.AnnualCapitalCost),
			fmtFloat(r.TotalAnnualCost),
		}
		for _, ph := range model.Phases() {
			row = append(row, fmtFloat(r.PhaseFuelKg(ph)))
		}
		row = append(row, fuelRed, co2Red, costDiff, isBaseline)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
