package domain

import "time"

// Intervention registra un curso de terapia aplicado a una persona y el
// efecto calculado sobre el trastorno objetivo.
type Intervention struct {
	ID             string  `json:"id"`
	PersonaID      string  `json:"persona_id"`
	Therapy        string  `json:"therapy"`
	TargetDisorder string  `json:"target_disorder"`
	DurationWeeks  int     `json:"duration_weeks"`
	Adherence      float64 `json:"adherence"`
	// Fracción de reducción aplicada a la severidad del trastorno objetivo.
	Effect             float64   `json:"effect"`
	MatchScore         float64   `json:"match_score"`
	DurationAssessment string    `json:"duration_assessment"`
	CreatedAt          time.Time `json:"created_at"`
}
