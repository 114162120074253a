package propulsion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vessel-propsim/internal/model"
)

func TestHybrid_SailingFuel(t *testing.T) {
	h, err := NewHybrid(hybridConfig())
	require.NoError(t, err)

	powerKW, hours := 3578.0, 100.0
	gensetKW := powerKW*0.80/0.97 + powerKW*0.20
	want := gensetKW * hours * 194.5 / 1000

	assert.InDelta(t, want, h.FuelConsumptionKg(powerKW, hours, model.PhaseSailing), 1e-6)
}

func TestHybrid_ZeroLoadBurnsNothing(t *testing.T) {
	h, err := NewHybrid(hybridConfig())
	require.NoError(t, err)

	assert.Zero(t, h.FuelConsumptionKg(0, 2628, model.PhasePort))
	assert.Zero(t, h.FuelConsumptionKg(450, 0, model.PhasePort))
}

func TestHybrid_BatteryOffsetsPortHours(t *testing.T) {
	h, err := NewHybrid(hybridConfig())
	require.NoError(t, err)

	// 1500 kWh at 450 kW covers the first 3.33 h of a 10 h port stay.
	powerKW, hours := 450.0, 10.0
	batteryHours := 1500.0 / powerKW
	gensetKW := powerKW*0.80/0.97 + powerKW*0.20
	want := gensetKW * (hours - batteryHours) * 194.5 / 1000

	got := h.FuelConsumptionKg(powerKW, hours, model.PhasePort)
	assert.InDelta(t, want, got, 1e-6)

	// Same load in a non-port phase gets no battery credit.
	sailing := h.FuelConsumptionKg(powerKW, hours, model.PhaseSailing)
	assert.Greater(t, sailing, got)
}

func TestHybrid_BatteryCoversShortPortStay(t *testing.T) {
	h, err := NewHybrid(hybridConfig())
	require.NoError(t, err)

	// 450 kW for 2 h is 900 kWh, within the 1500 kWh battery.
	assert.Zero(t, h.FuelConsumptionKg(450, 2, model.PhasePort))
}

func TestHybrid_PortFuelNonDecreasingInDuration(t *testing.T) {
	h, err := NewHybrid(hybridConfig())
	require.NoError(t, err)

	// 1500 kWh at 450 kW saturates at 3.33 h. Fuel must stay flat at zero up
	// to that point and grow monotonically past it.
	saturation := 1500.0 / 450.0
	prev := 0.0
	for _, hours := range []float64{0.5, 1, 2, 3, saturation, saturation + 0.01, 4, 5, 10, 100, 2628} {
		got := h.FuelConsumptionKg(450, hours, model.PhasePort)
		assert.GreaterOrEqual(t, got, prev, "hours=%g", hours)
		prev = got
	}
	assert.Zero(t, h.FuelConsumptionKg(450, saturation, model.PhasePort))
	assert.Greater(t, h.FuelConsumptionKg(450, saturation+0.01, model.PhasePort), 0.0)
}

func TestHybrid_LargerBatteryNeverBurnsMore(t *testing.T) {
	small := hybridConfig()
	large := hybridConfig()
	large.BatteryCapacityKWh = 5000

	hs, err := NewHybrid(small)
	require.NoError(t, err)
	hl, err := NewHybrid(large)
	require.NoError(t, err)

	for _, hours := range []float64{1, 5, 20, 2628} {
		assert.LessOrEqual(t,
			hl.FuelConsumptionKg(450, hours, model.PhasePort),
			hs.FuelConsumptionKg(450, hours, model.PhasePort))
	}
}

func TestNewHybrid_RequiresBattery(t *testing.T) {
	cfg := hybridConfig()
	cfg.BatteryCapacityKWh = 0
	_, err := NewHybrid(cfg)
	assert.Error(t, err)
}
