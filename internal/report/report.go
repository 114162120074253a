// Package report renders comparison results as plain-text reports. It only
// reads the Results it is given.
package report

import (
	"fmt"
	"io"
	"strings"

	"vessel-propsim/internal/analysis"
	"vessel-propsim/internal/simulator"
)

const tableWidth = 100

type Writer struct {
	w io.Writer
}

func New(w io.Writer) *Writer { return &Writer{w: w} }

// SummaryTable prints one line per configuration with annual totals and the
// baseline-relative CO2 figure.
func (wr *Writer) SummaryTable(results []*simulator.Result) {
	rule := strings.Repeat("=", tableWidth)
	fmt.Fprintln(wr.w, rule)
	fmt.Fprintln(wr.w, "SUMMARY COMPARISON TABLE")
	fmt.Fprintln(wr.w, rule)
	fmt.Fprintf(wr.w, "%-32s %-12s %-12s %-16s %-20s\n",
		"Configuration", "Fuel (t/y)", "CO2 (t/y)", "Cost ($/y)", "vs Baseline")
	fmt.Fprintln(wr.w, strings.Repeat("-", tableWidth))

	for _, r := range results {
		baselineStr := ""
		if r.VsBaseline != nil {
			if r.VsBaseline.IsBaseline {
				baselineStr = "BASELINE"
			} else {
				baselineStr = fmt.Sprintf("CO2: %+.1f%%", r.VsBaseline.CO2ReductionPct)
			}
		}
		fmt.Fprintf(wr.w, "%-32s %-12.0f %-12.0f $%-15.0f %-20s\n",
			r.Configuration,
			r.TotalFuelTonnes(),
			r.TotalCO2Tonnes(),
			r.TotalAnnualCost,
			baselineStr,
		)
	}
	fmt.Fprintln(wr.w, rule)
}

// ValueProposition prints a per-alternative economic and environmental
// summary against the baseline entry: annual deltas, net annual savings, and
// lifecycle CO2 avoided.
func (wr *Writer) ValueProposition(results []*simulator.Result, baselineIdx int, lifecycleYears int) error {
	if baselineIdx < 0 || baselineIdx >= len(results) {
		return fmt.Errorf("baseline index %d out of range (have %d results)", baselineIdx, len(results))
	}
	baseline := results[baselineIdx]

	rule := strings.Repeat("=", tableWidth)
	fmt.Fprintln(wr.w, rule)
	fmt.Fprintln(wr.w, "VALUE PROPOSITION SUMMARY")
	fmt.Fprintln(wr.w, rule)
	fmt.Fprintf(wr.w, "Baseline: %s\n", baseline.Configuration)
	fmt.Fprintf(wr.w, "  Annual Fuel: %10.0f tonnes\n", baseline.TotalFuelTonnes())
	fmt.Fprintf(wr.w, "  Annual CO2:  %10.0f tonnes\n", baseline.TotalCO2Tonnes())
	fmt.Fprintf(wr.w, "  Annual Cost: $%10.0f\n", baseline.TotalAnnualCost)

	for i, r := range results {
		if i == baselineIdx {
			continue
		}
		fmt.Fprintln(wr.w, strings.Repeat("-", tableWidth))
		fmt.Fprintf(wr.w, "Configuration: %s\n", r.Configuration)

		fuelPct, co2Pct, costPct := 0.0, 0.0, 0.0
		if r.VsBaseline != nil {
			fuelPct = r.VsBaseline.FuelReductionPct
			co2Pct = r.VsBaseline.CO2ReductionPct
			costPct = r.VsBaseline.CostDifferencePct
		}

		fmt.Fprintf(wr.w, "  Fuel Consumption:  %10.0f tonnes  (%+6.1f%%)\n", r.TotalFuelTonnes(), fuelPct)
		fmt.Fprintf(wr.w, "  CO2 Emissions:     %10.0f tonnes  (%+6.1f%%)\n", r.TotalCO2Tonnes(), co2Pct)
		fmt.Fprintf(wr.w, "  Total Annual Cost: $%10.0f  (%+6.1f%%)\n", r.TotalAnnualCost, costPct)

		fuelSavings := baseline.FuelCost - r.FuelCost
		capitalPremium := r.AnnualCapitalCost - baseline.AnnualCapitalCost
		netAnnual := fuelSavings - capitalPremium
		co2AvoidedLifecycle := (baseline.TotalCO2Tonnes() - r.TotalCO2Tonnes()) * float64(lifecycleYears)

		fmt.Fprintf(wr.w, "  Fuel Cost Savings:        $%10.0f per year\n", fuelSavings)
		fmt.Fprintf(wr.w, "  Capital Cost Premium:     $%10.0f per year\n", capitalPremium)
		if netAnnual >= 0 {
			fmt.Fprintf(wr.w, "  Net Annual Savings:       $%10.0f\n", netAnnual)
		} else {
			fmt.Fprintf(wr.w, "  Net Annual Cost:          $%10.0f\n", -netAnnual)
		}
		fmt.Fprintf(wr.w, "  CO2 Avoided (%d years):   %10.0f tonnes\n", lifecycleYears, co2AvoidedLifecycle)
	}
	fmt.Fprintln(wr.w, rule)
	return nil
}

// Rankings prints the configurations ordered by total annual cost and by
// annual CO2 emissions.
func (wr *Writer) Rankings(results []*simulator.Result) {
	fmt.Fprintln(wr.w, strings.Repeat("-", tableWidth))
	fmt.Fprintln(wr.w, "Ranked by total annual cost:")
	for i, r := range analysis.RankByTotalCost(results) {
		fmt.Fprintf(wr.w, "  %d. %-32s $%12.0f per year\n", i+1, r.Configuration, r.TotalAnnualCost)
	}
	fmt.Fprintln(wr.w, "Ranked by CO2 emissions:")
	for i, r := range analysis.RankByCO2(results) {
		fmt.Fprintf(wr.w, "  %d. %-32s %12.0f tonnes per year\n", i+1, r.Configuration, r.TotalCO2Tonnes())
	}
	fmt.Fprintln(wr.w, strings.Repeat("-", tableWidth))
}

// SensitivityTable prints one fuel-price sweep.
func (wr *Writer) SensitivityTable(s *analysis.Sensitivity) {
	fmt.Fprintf(wr.w, "%s: total annual cost vs fuel price\n", s.Configuration)
	for _, p := range s.Points {
		fmt.Fprintf(wr.w, "  x%-5.2f  $%12.0f fuel  $%12.0f total\n",
			p.Multiplier, p.FuelCost, p.TotalAnnualCost)
	}
	fmt.Fprintf(wr.w, "  slope: $%.0f per unit price multiplier\n", s.Slope)
}

// PhaseBreakdown prints the per-phase fuel split for a single result.
func (wr *Writer) PhaseBreakdown(r *simulator.Result) {
	fmt.Fprintf(wr.w, "%s: fuel by operating phase\n", r.Configuration)
	for _, b := range r.Breakdown {
		fmt.Fprintf(wr.w, "  %-12s %7.0f h  %7.0f kW  %12.0f kg  (%5.1f%%)\n",
			b.Phase, b.Hours, b.PowerKW, b.FuelKg, b.Percentage)
	}
}
