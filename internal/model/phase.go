package model

// Phase is one of the three annual operating regimes.
// Keep these values stable; they are used in CSV output and the database.
type Phase string

const (
	PhaseSailing     Phase = "sailing"
	PhaseManeuvering Phase = "maneuvering"
	PhasePort        Phase = "port"
)

// Phases lists the phases in their canonical reporting order.
func Phases() []Phase {
	return []Phase{PhaseSailing, PhaseManeuvering, PhasePort}
}
