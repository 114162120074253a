package analysis

import (
	"sort"

	"vessel-propsim/internal/simulator"
)

// RankByTotalCost returns the results sorted ascending by total annual cost,
// cheapest first. The input slice is not modified.
func RankByTotalCost(results []*simulator.Result) []*simulator.Result {
	out := make([]*simulator.Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalAnnualCost < out[j].TotalAnnualCost
	})
	return out
}

// RankByCO2 returns the results sorted ascending by annual CO2 emissions.
func RankByCO2(results []*simulator.Result) []*simulator.Result {
	out := make([]*simulator.Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCO2Kg < out[j].TotalCO2Kg
	})
	return out
}
