package domain

import "time"

// Experience es un evento de vida registrado para una persona. La categoría
// y severidad pueden venir del caller o inferirse de la descripción.
type Experience struct {
	ID          string    `json:"id"`
	PersonaID   string    `json:"persona_id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Kind        string    `json:"kind"` // "trauma" o "positive"
	AgeAtEvent  int       `json:"age_at_event"`
	CreatedAt   time.Time `json:"created_at"`
}
