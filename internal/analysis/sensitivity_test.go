package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vessel-propsim/internal/model"
	"vessel-propsim/internal/simulator"
)

func testConfig() model.Config {
	return model.Config{
		ID:             1,
		Name:           "Conventional Diesel",
		Type:           model.TypeConventional,
		MainEngineSFOC: 181.0,
		AuxEngineSFOC:  195.1,
		CO2Factor:      3.206,
		SOxFactor:      0.001,
		InitialCost:    2_800_000,
		FuelPrice:      650,
	}
}

func testProfile() model.Profile {
	return model.Profile{
		ID:                 1,
		Name:               "Short-Sea Tanker Route",
		SailingHours:       5694,
		SailingPropPowerKW: 3200,
		SailingElecPowerKW: 378,
		PortHours:          2628,
		PortElecPowerKW:    450,
	}
}

func TestFuelPriceSensitivity(t *testing.T) {
	sim := simulator.New()
	multipliers := []float64{0.5, 0.75, 1.0, 1.25, 1.5}

	sens, err := FuelPriceSensitivity(sim, testConfig(), testProfile(), multipliers)
	require.NoError(t, err)
	require.Len(t, sens.Points, 5)
	assert.Equal(t, "Conventional Diesel", sens.Configuration)

	// Total cost is linear in the price multiplier, so the regression slope
	// equals the fuel cost at the configured price.
	base := sens.Points[2]
	assert.InDelta(t, 1.0, base.Multiplier, 1e-9)
	assert.InDelta(t, base.FuelCost, sens.Slope, 1e-3)

	assert.InDelta(t, sens.Points[0].TotalAnnualCost, sens.MinCost, 1e-9)
	assert.InDelta(t, sens.Points[4].TotalAnnualCost, sens.MaxCost, 1e-9)
	assert.GreaterOrEqual(t, sens.MeanCost, sens.MinCost)
	assert.LessOrEqual(t, sens.MeanCost, sens.MaxCost)

	// Cost rises with price.
	for i := 1; i < len(sens.Points); i++ {
		assert.Greater(t, sens.Points[i].TotalAnnualCost, sens.Points[i-1].TotalAnnualCost)
	}
}

func TestFuelPriceSensitivity_RejectsBadInput(t *testing.T) {
	sim := simulator.New()

	_, err := FuelPriceSensitivity(sim, testConfig(), testProfile(), nil)
	assert.Error(t, err)

	_, err = FuelPriceSensitivity(sim, testConfig(), testProfile(), []float64{1.0, -0.5})
	assert.Error(t, err)
}

func TestRank(t *testing.T) {
	results := []*simulator.Result{
		{Configuration: "A", TotalAnnualCost: 300, TotalCO2Kg: 100},
		{Configuration: "B", TotalAnnualCost: 100, TotalCO2Kg: 300},
		{Configuration: "C", TotalAnnualCost: 200, TotalCO2Kg: 200},
	}

	byCost := RankByTotalCost(results)
	assert.Equal(t, "B", byCost[0].Configuration)
	assert.Equal(t, "A", byCost[2].Configuration)

	byCO2 := RankByCO2(results)
	assert.Equal(t, "A", byCO2[0].Configuration)
	assert.Equal(t, "B", byCO2[2].Configuration)

	// Input order is untouched.
	assert.Equal(t, "A", results[0].Configuration)
}
