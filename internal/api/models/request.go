package models

import "vessel-propsim/internal/model"

// SimulateRequest is the body for POST /api/v1/simulate.
type SimulateRequest struct {
	Config  ConfigPayload  `json:"config" binding:"required"`
	Profile ProfilePayload `json:"profile" binding:"required"`
}

// CompareRequest is the body for POST /api/v1/compare.
type CompareRequest struct {
	Configurations []ConfigPayload `json:"configurations" binding:"required"`
	Profile        ProfilePayload  `json:"profile" binding:"required"`
	BaselineIndex  int             `json:"baseline_index"`
}

// SensitivityRequest is the body for POST /api/v1/sensitivity. An empty
// multiplier list selects the default sweep.
type SensitivityRequest struct {
	Config      ConfigPayload  `json:"config" binding:"required"`
	Profile     ProfilePayload `json:"profile" binding:"required"`
	Multipliers []float64      `json:"multipliers"`
}

// ConfigPayload is the JSON shape of one propulsion configuration.
type ConfigPayload struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	PrimaryFuel string `json:"primary_fuel,omitempty"`
	BackupFuel  string `json:"backup_fuel,omitempty"`

	MainEngineSFOC float64 `json:"main_engine_sfoc,omitempty"`
	AuxEngineSFOC  float64 `json:"aux_engine_sfoc,omitempty"`

	SFOCGas         float64 `json:"sfoc_gas,omitempty"`
	SFOCDiesel      float64 `json:"sfoc_diesel,omitempty"`
	LNGRatio        float64 `json:"lng_ratio,omitempty"`
	PilotFuelSFOC   float64 `json:"pilot_fuel_sfoc,omitempty"`
	CO2FactorBackup float64 `json:"co2_factor_backup,omitempty"`

	BatteryCapacityKWh float64 `json:"battery_capacity_kwh,omitempty"`
	BatteryEfficiency  float64 `json:"battery_efficiency,omitempty"`
	MotorEfficiency    float64 `json:"motor_efficiency,omitempty"`

	CO2Factor float64 `json:"co2_factor,omitempty"`
	SOxFactor float64 `json:"sox_factor,omitempty"`

	InitialCost     float64 `json:"initial_cost,omitempty"`
	FuelPrice       float64 `json:"fuel_price,omitempty"`
	BackupFuelPrice float64 `json:"backup_fuel_price,omitempty"`

	PropulsiveShare float64 `json:"propulsive_share,omitempty"`
	ElectricalShare float64 `json:"electrical_share,omitempty"`
}

// ProfilePayload is the JSON shape of one operating profile.
type ProfilePayload struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	VesselType string `json:"vessel_type,omitempty"`

	SailingHours       float64 `json:"sailing_hours"`
	SailingPropPowerKW float64 `json:"sailing_prop_power_kw"`
	SailingElecPowerKW float64 `json:"sailing_elec_power_kw"`

	ManeuveringHours       float64 `json:"maneuvering_hours"`
	ManeuveringPropPowerKW float64 `json:"maneuvering_prop_power_kw"`
	ManeuveringElecPowerKW float64 `json:"maneuvering_elec_power_kw"`

	PortHours       float64 `json:"port_hours"`
	PortPropPowerKW float64 `json:"port_prop_power_kw"`
	PortElecPowerKW float64 `json:"port_elec_power_kw"`
}

func (c ConfigPayload) ToModel() model.Config {
	return model.Config{
		ID:                 c.ID,
		Name:               c.Name,
		Type:               model.PropulsionType(c.Type),
		PrimaryFuel:        c.PrimaryFuel,
		BackupFuel:         c.BackupFuel,
		MainEngineSFOC:     c.MainEngineSFOC,
		AuxEngineSFOC:      c.AuxEngineSFOC,
		SFOCGas:            c.SFOCGas,
		SFOCDiesel:         c.SFOCDiesel,
		LNGRatio:           c.LNGRatio,
		PilotFuelSFOC:      c.PilotFuelSFOC,
		CO2FactorBackup:    c.CO2FactorBackup,
		BatteryCapacityKWh: c.BatteryCapacityKWh,
		BatteryEfficiency:  c.BatteryEfficiency,
		MotorEfficiency:    c.MotorEfficiency,
		CO2Factor:          c.CO2Factor,
		SOxFactor:          c.SOxFactor,
		InitialCost:        c.InitialCost,
		FuelPrice:          c.FuelPrice,
		BackupFuelPrice:    c.BackupFuelPrice,
		PropulsiveShare:    c.PropulsiveShare,
		ElectricalShare:    c.ElectricalShare,
	}
}

func ConfigPayloadFrom(c model.Config) ConfigPayload {
	return ConfigPayload{
		ID:                 c.ID,
		Name:               c.Name,
		Type:               string(c.Type),
		PrimaryFuel:        c.PrimaryFuel,
		BackupFuel:         c.BackupFuel,
		MainEngineSFOC:     c.MainEngineSFOC,
		AuxEngineSFOC:      c.AuxEngineSFOC,
		SFOCGas:            c.SFOCGas,
		SFOCDiesel:         c.SFOCDiesel,
		LNGRatio:           c.LNGRatio,
		PilotFuelSFOC:      c.PilotFuelSFOC,
		CO2FactorBackup:    c.CO2FactorBackup,
		BatteryCapacityKWh: c.BatteryCapacityKWh,
		BatteryEfficiency:  c.BatteryEfficiency,
		MotorEfficiency:    c.MotorEfficiency,
		CO2Factor:          c.CO2Factor,
		SOxFactor:          c.SOxFactor,
		InitialCost:        c.InitialCost,
		FuelPrice:          c.FuelPrice,
		BackupFuelPrice:    c.BackupFuelPrice,
		PropulsiveShare:    c.PropulsiveShare,
		ElectricalShare:    c.ElectricalShare,
	}
}

func (p ProfilePayload) ToModel() model.Profile {
	return model.Profile{
		ID:                     p.ID,
		Name:                   p.Name,
		VesselType:             p.VesselType,
		SailingHours:           p.SailingHours,
		SailingPropPowerKW:     p.SailingPropPowerKW,
		SailingElecPowerKW:     p.SailingElecPowerKW,
		ManeuveringHours:       p.ManeuveringHours,
		ManeuveringPropPowerKW: p.ManeuveringPropPowerKW,
		ManeuveringElecPowerKW: p.ManeuveringElecPowerKW,
		PortHours:              p.PortHours,
		PortPropPowerKW:        p.PortPropPowerKW,
		PortElecPowerKW:        p.PortElecPowerKW,
	}
}

func ProfilePayloadFrom(p model.Profile) ProfilePayload {
	return ProfilePayload{
		ID:                     p.ID,
		Name:                   p.Name,
		VesselType:             p.VesselType,
		SailingHours:           p.SailingHours,
		SailingPropPowerKW:     p.SailingPropPowerKW,
		SailingElecPowerKW:     p.SailingElecPowerKW,
		ManeuveringHours:       p.ManeuveringHours,
		ManeuveringPropPowerKW: p.ManeuveringPropPowerKW,
		ManeuveringElecPowerKW: p.ManeuveringElecPowerKW,
		PortHours:              p.PortHours,
		PortPropPowerKW:        p.PortPropPowerKW,
		PortElecPowerKW:        p.PortElecPowerKW,
	}
}
