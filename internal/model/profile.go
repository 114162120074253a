package model

import "fmt"

// HoursPerLeapYear caps a plausible annual duty cycle. The check is advisory:
// profiles are user data and a few hours of overrun is not worth rejecting.
const HoursPerLeapYear = 8784

// Profile describes one annual duty cycle: how many hours the vessel spends
// in each phase and the propulsive/electrical power demand per phase.
type Profile struct {
	ID         int64
	Name       string
	VesselType string

	SailingHours       float64
	SailingPropPowerKW float64
	SailingElecPowerKW float64

	ManeuveringHours       float64
	ManeuveringPropPowerKW float64
	ManeuveringElecPowerKW float64

	PortHours       float64
	PortPropPowerKW float64
	PortElecPowerKW float64
}

// PhaseLoad is one phase's duty: duration plus combined power demand.
type PhaseLoad struct {
	Phase       Phase
	Hours       float64
	PropPowerKW float64
	ElecPowerKW float64
}

// TotalPowerKW is the combined propulsive + electrical demand for the phase.
func (l PhaseLoad) TotalPowerKW() float64 {
	return l.PropPowerKW + l.ElecPowerKW
}

// PhaseLoads returns the three phase duties in canonical order.
func (p Profile) PhaseLoads() []PhaseLoad {
	return []PhaseLoad{
		{Phase: PhaseSailing, Hours: p.SailingHours, PropPowerKW: p.SailingPropPowerKW, ElecPowerKW: p.SailingElecPowerKW},
		{Phase: PhaseManeuvering, Hours: p.ManeuveringHours, PropPowerKW: p.ManeuveringPropPowerKW, ElecPowerKW: p.ManeuveringElecPowerKW},
		{Phase: PhasePort, Hours: p.PortHours, PropPowerKW: p.PortPropPowerKW, ElecPowerKW: p.PortElecPowerKW},
	}
}

// TotalHours is the annual operating total across all three phases.
func (p Profile) TotalHours() float64 {
	return p.SailingHours + p.ManeuveringHours + p.PortHours
}

// ExceedsCalendarYear reports whether the profile claims more hours than a
// calendar year holds. Soft check only; Validate does not enforce it.
func (p Profile) ExceedsCalendarYear() bool {
	return p.TotalHours() > HoursPerLeapYear
}

// Validate rejects negative durations and power demands. The propulsion
// formulas do not defend against negative inputs, so this runs before any
// model method.
func (p Profile) Validate() error {
	for _, l := range p.PhaseLoads() {
		if l.Hours < 0 {
			return fmt.Errorf("%s hours must be >= 0, got %g", l.Phase, l.Hours)
		}
		if l.PropPowerKW < 0 {
			return fmt.Errorf("%s propulsive power must be >= 0, got %g", l.Phase, l.PropPowerKW)
		}
		if l.ElecPowerKW < 0 {
			return fmt.Errorf("%s electrical power must be >= 0, got %g", l.Phase, l.ElecPowerKW)
		}
	}
	return nil
}
