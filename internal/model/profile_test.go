package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tankerProfile() Profile {
	return Profile{
		Name:                   "Short-Sea Tanker Route",
		SailingHours:           5694,
		SailingPropPowerKW:     3200,
		SailingElecPowerKW:     378,
		ManeuveringHours:       438,
		ManeuveringPropPowerKW: 1200,
		ManeuveringElecPowerKW: 400,
		PortHours:              2628,
		PortElecPowerKW:        450,
	}
}

func TestProfile_PhaseLoadsOrder(t *testing.T) {
	loads := tankerProfile().PhaseLoads()
	assert.Len(t, loads, 3)
	assert.Equal(t, PhaseSailing, loads[0].Phase)
	assert.Equal(t, PhaseManeuvering, loads[1].Phase)
	assert.Equal(t, PhasePort, loads[2].Phase)

	assert.InDelta(t, 3578, loads[0].TotalPowerKW(), 1e-9)
	assert.InDelta(t, 450, loads[2].TotalPowerKW(), 1e-9)
}

func TestProfile_TotalHours(t *testing.T) {
	p := tankerProfile()
	assert.InDelta(t, 8760, p.TotalHours(), 1e-9)
	assert.False(t, p.ExceedsCalendarYear())

	p.PortHours += 100
	assert.True(t, p.ExceedsCalendarYear())
	// Soft check only.
	assert.NoError(t, p.Validate())
}

func TestProfileValidate_RejectsNegatives(t *testing.T) {
	p := tankerProfile()
	assert.NoError(t, p.Validate())

	p.SailingHours = -1
	assert.Error(t, p.Validate())

	p = tankerProfile()
	p.ManeuveringPropPowerKW = -500
	assert.Error(t, p.Validate())

	p = tankerProfile()
	p.PortElecPowerKW = -450
	assert.Error(t, p.Validate())
}
