package propulsion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vessel-propsim/internal/model"
)

func conventionalConfig() model.Config {
	return model.Config{
		ID:             1,
		Name:           "Conventional Diesel",
		Type:           model.TypeConventional,
		PrimaryFuel:    "MDO",
		MainEngineSFOC: 181.0,
		AuxEngineSFOC:  195.1,
		CO2Factor:      3.206,
		SOxFactor:      0.001,
		InitialCost:    2_800_000,
		FuelPrice:      650,
	}
}

func dualFuelConfig() model.Config {
	return model.Config{
		ID:              2,
		Name:            "Dual-Fuel LNG",
		Type:            model.TypeDualFuel,
		PrimaryFuel:     "LNG",
		BackupFuel:      "MDO",
		SFOCGas:         157.5,
		SFOCDiesel:      176.9,
		AuxEngineSFOC:   172.0,
		LNGRatio:        0.95,
		PilotFuelSFOC:   5.2,
		CO2Factor:       2.75,
		CO2FactorBackup: 3.206,
		SOxFactor:       0.001,
		InitialCost:     4_200_000,
		FuelPrice:       520,
		BackupFuelPrice: 650,
	}
}

func hybridConfig() model.Config {
	return model.Config{
		ID:                 3,
		Name:               "Hybrid Electric",
		Type:               model.TypeHybrid,
		PrimaryFuel:        "MDO",
		AuxEngineSFOC:      194.5,
		BatteryCapacityKWh: 1500,
		BatteryEfficiency:  0.95,
		MotorEfficiency:    0.97,
		CO2Factor:          3.206,
		SOxFactor:          0.001,
		InitialCost:        3_900_000,
		FuelPrice:          650,
	}
}

func TestNewConventional_WeightedSFOC(t *testing.T) {
	c, err := NewConventional(conventionalConfig())
	require.NoError(t, err)

	// 181.0*0.80 + 195.1*0.20
	assert.InDelta(t, 183.82, c.WeightedSFOC(), 1e-9)
}

func TestNewConventional_CustomShares(t *testing.T) {
	cfg := conventionalConfig()
	cfg.PropulsiveShare = 0.70
	cfg.ElectricalShare = 0.30

	c, err := NewConventional(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 181.0*0.70+195.1*0.30, c.WeightedSFOC(), 1e-9)
}

func TestNewConventional_InvalidConfig(t *testing.T) {
	cfg := conventionalConfig()
	cfg.MainEngineSFOC = 0

	_, err := NewConventional(cfg)
	assert.Error(t, err)
}

func TestConventional_FuelConsumption(t *testing.T) {
	c, err := NewConventional(conventionalConfig())
	require.NoError(t, err)

	// Short-sea tanker sailing phase: 3578 kW combined over 5694 h.
	fuel := c.FuelConsumptionKg(3578, 5694, model.PhaseSailing)
	assert.InDelta(t, 3578*5694*183.82/1000, fuel, 1e-6)

	assert.Zero(t, c.FuelConsumptionKg(0, 2628, model.PhasePort))
	assert.Zero(t, c.FuelConsumptionKg(3578, 0, model.PhaseSailing))
}

func TestConventional_FuelScalesLinearly(t *testing.T) {
	c, err := NewConventional(conventionalConfig())
	require.NoError(t, err)

	base := c.FuelConsumptionKg(1000, 100, model.PhaseSailing)
	assert.InDelta(t, 2*base, c.FuelConsumptionKg(2000, 100, model.PhaseSailing), 1e-9)
	assert.InDelta(t, 2*base, c.FuelConsumptionKg(1000, 200, model.PhaseSailing), 1e-9)
}

func TestConventional_EmissionsAndCost(t *testing.T) {
	c, err := NewConventional(conventionalConfig())
	require.NoError(t, err)

	em := c.Emissions(10_000)
	assert.InDelta(t, 10_000*3.206, em.CO2Kg, 1e-9)
	assert.InDelta(t, 10_000*0.001, em.SOxKg, 1e-9)

	// 10 t at $650/t.
	assert.InDelta(t, 6500, c.FuelCost(10_000), 1e-9)
}
