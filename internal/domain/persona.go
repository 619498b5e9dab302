package domain

import (
	"time"

	"persona-sim/internal/psych"
)

/*
========================
 Persona simulada
========================
*/

// Persona es un personaje simulado: baseline de personalidad derivado de su
// backstory más el estado psicológico acumulado por sus experiencias.
type Persona struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	Age       int               `json:"age"`
	Backstory string            `json:"backstory,omitempty"`
	Traits    psych.TraitVector `json:"traits"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Orígenes posibles de un score de trastorno.
const (
	DisorderSourceBackstory  = "backstory"
	DisorderSourceAssessment = "assessment"
)

// DisorderScore es el estado actual de un trastorno en una persona. Se
// upsertea por (persona, trastorno): las experiencias nuevas recalculan el
// fold completo y pisan el valor anterior.
type DisorderScore struct {
	ID             string             `json:"id"`
	PersonaID      string             `json:"persona_id"`
	Disorder       string             `json:"disorder"`
	Category       string             `json:"category"`
	Severity       float64            `json:"severity"`
	OnsetAge       int                `json:"onset_age"`
	Source         string             `json:"source"`
	SymptomDetails map[string]float64 `json:"symptom_details,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
