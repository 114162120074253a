package propulsion

import (
	"fmt"

	"vessel-propsim/internal/model"
)

// Methane slip: unburned methane escaping gas-mode combustion, counted as
// CO2-equivalent via its global-warming-potential multiplier.
const (
	methaneSlipFraction = 0.015
	methaneGWP          = 28
)

// Diesel backup mode runs the engine off its gas-optimized operating point;
// the rated diesel SFOC is derated to approximate the installed blend.
const dieselModeDerate = 0.95

// DualFuel models an LNG dual-fuel plant. Operating time splits into a gas
// mode (LNGRatio) and a liquid-fuel backup mode, each with its own weighted
// SFOC, plus a diesel pilot flame burned during gas-mode hours.
type DualFuel struct {
	cfg model.Config

	sfocGasWeighted    float64 // g/kWh
	sfocDieselWeighted float64 // g/kWh
}

func NewDualFuel(cfg model.Config) (*DualFuel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dual-fuel config invalid: %w", err)
	}
	return &DualFuel{
		cfg:                cfg,
		sfocGasWeighted:    cfg.SFOCGas*cfg.PropShare() + cfg.AuxEngineSFOC*cfg.ElecShare(),
		sfocDieselWeighted: cfg.SFOCDiesel * dieselModeDerate,
	}, nil
}

func (d *DualFuel) Name() string { return d.cfg.Name }

func (d *DualFuel) FuelConsumptionKg(powerKW, hours float64, _ model.Phase) float64 {
	gasHours := hours * d.cfg.LNGRatio
	dieselHours := hours * (1 - d.cfg.LNGRatio)

	gasFuelKg := powerKW * gasHours * d.sfocGasWeighted / 1000
	pilotFuelKg := powerKW * gasHours * d.cfg.PilotFuelSFOC / 1000
	dieselFuelKg := powerKW * dieselHours * d.sfocDieselWeighted / 1000

	return gasFuelKg + pilotFuelKg + dieselFuelKg
}

// Emissions blends the per-mode CO2 factors by the LNG ratio and adds the
// methane-slip penalty. SOx arises only from the diesel-mode fraction; LNG
// is sulfur-free.
func (d *DualFuel) Emissions(fuelKg float64) Emissions {
	blendedCO2 := d.cfg.CO2Factor*d.cfg.LNGRatio + d.cfg.CO2FactorBackup*(1-d.cfg.LNGRatio)
	totalCO2Factor := blendedCO2 + methaneSlipFraction*methaneGWP

	return Emissions{
		CO2Kg: fuelKg * totalCO2Factor,
		SOxKg: fuelKg * (1 - d.cfg.LNGRatio) * d.cfg.SOxFactor,
	}
}

// FuelCost prices the LNG and diesel splits against their own unit prices.
func (d *DualFuel) FuelCost(fuelKg float64) float64 {
	lngCost := fuelKg * d.cfg.LNGRatio * d.cfg.FuelPrice / 1000
	backupCost := fuelKg * (1 - d.cfg.LNGRatio) * d.cfg.BackupFuelPrice / 1000
	return lngCost + backupCost
}
