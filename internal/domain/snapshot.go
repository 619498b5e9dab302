package domain

import (
	"time"

	"persona-sim/internal/psych"
)

// Motivos que disparan una captura de estado.
const (
	SnapshotReasonCreated      = "persona_created"
	SnapshotReasonExperience   = "experience_applied"
	SnapshotReasonIntervention = "intervention_applied"
)

// PersonaSnapshot es una foto inmutable del estado psicológico de una
// persona en un momento dado. Forma la línea de tiempo clínica.
type PersonaSnapshot struct {
	ID        string            `json:"id"`
	PersonaID string            `json:"persona_id"`
	Reason    string            `json:"reason"`
	Traits    psych.TraitVector `json:"traits"`
	Disorders []DisorderScore   `json:"disorders"`
	TakenAt   time.Time         `json:"taken_at"`
}
