package psych

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

/*
========================
 Catálogo de terapias
========================
*/

// ModalityID identifica una modalidad terapéutica (ej: "CBT", "EMDR").
type ModalityID string

// Therapy describe una modalidad basada en evidencia: qué trata, cómo
// funciona y qué no cubre. Solo lectura.
type Therapy struct {
	ID              ModalityID `json:"id"`
	Name            string     `json:"name"`
	BestFor         []string   `json:"best_for"`
	Mechanism       string     `json:"mechanism"`
	Limitations     []string   `json:"limitations"`
	TypicalDuration string     `json:"typical_duration"`
	EvidenceBase    string     `json:"evidence_base"`
}

// TherapyCatalog indexa modalidades con lookup case-insensitive.
// Compartible entre goroutines sin locks.
type TherapyCatalog struct {
	byKey map[string]Therapy
	order []ModalityID
	// efectividad base por (trastorno, modalidad); default 0.4 si falta.
	effectiveness map[string]map[string]float64
}

// NewTherapyCatalog valida y construye el catálogo.
func NewTherapyCatalog(therapies []Therapy, effectiveness map[string]map[string]float64) (*TherapyCatalog, error) {
	byKey := make(map[string]Therapy, len(therapies))
	order := make([]ModalityID, 0, len(therapies))

	for _, t := range therapies {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: therapy with empty id", ErrInvalidInput)
		}
		key := strings.ToLower(string(t.ID))
		if _, dup := byKey[key]; dup {
			return nil, fmt.Errorf("%w: duplicate therapy id %q", ErrInvalidInput, t.ID)
		}
		byKey[key] = t
		order = append(order, t.ID)
	}

	normEff := make(map[string]map[string]float64, len(effectiveness))
	for disorder, byModality := range effectiveness {
		inner := make(map[string]float64, len(byModality))
		for modality, base := range byModality {
			inner[strings.ToLower(modality)] = base
		}
		normEff[strings.ToLower(disorder)] = inner
	}

	return &TherapyCatalog{byKey: byKey, order: order, effectiveness: normEff}, nil
}

// DefaultTherapyCatalog carga las ocho modalidades del simulador.
func DefaultTherapyCatalog() *TherapyCatalog {
	c, err := NewTherapyCatalog(defaultTherapies, defaultEffectiveness)
	if err != nil {
		panic(err)
	}
	return c
}

// Get busca una modalidad. El lookup es case-insensitive ("act" == "ACT").
// Id desconocido devuelve ErrNotFound.
func (c *TherapyCatalog) Get(id string) (Therapy, error) {
	t, ok := c.byKey[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Therapy{}, fmt.Errorf("%w: therapy %q", ErrNotFound, id)
	}
	return t, nil
}

// IDs lista las modalidades en orden de catálogo.
func (c *TherapyCatalog) IDs() []ModalityID {
	return append([]ModalityID{}, c.order...)
}

// TherapiesForSymptom devuelve las modalidades cuyo best_for incluye el
// síntoma dado.
func (c *TherapyCatalog) TherapiesForSymptom(symptom string) []ModalityID {
	target := strings.ToLower(strings.TrimSpace(symptom))
	var out []ModalityID
	for _, id := range c.order {
		t := c.byKey[strings.ToLower(string(id))]
		for _, s := range t.BestFor {
			if s == target {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// TreatableSymptoms lista, ordenado y sin duplicados, todo lo que alguna
// modalidad del catálogo trata.
func (c *TherapyCatalog) TreatableSymptoms() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range c.byKey {
		for _, s := range t.BestFor {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// MatchScore calcula qué tan bien una modalidad cubre un conjunto de
// síntomas, en [0,1]. Modalidad desconocida o lista vacía devuelven 0.0.
// El bono escalonado es asimétrico a propósito: premia generosamente
// cualquier match relevante. Los umbrales usan >= en los bordes.
func (c *TherapyCatalog) MatchScore(id string, symptoms []string) float64 {
	therapy, err := c.Get(id)
	if err != nil {
		return 0.0
	}
	if len(symptoms) == 0 {
		return 0.0
	}

	bestFor := make(map[string]struct{}, len(therapy.BestFor))
	for _, s := range therapy.BestFor {
		bestFor[strings.ToLower(s)] = struct{}{}
	}

	matches := 0
	for _, s := range symptoms {
		if _, ok := bestFor[strings.ToLower(s)]; ok {
			matches++
		}
	}
	if matches == 0 {
		return 0.0
	}

	ratio := float64(matches) / float64(len(symptoms))
	switch {
	case ratio >= 0.75:
		return math.Min(1.0, ratio+0.2)
	case ratio >= 0.5:
		return math.Min(1.0, ratio+0.25)
	default:
		// Un solo match ya merece un puntaje decente.
		return math.Min(1.0, ratio+0.3)
	}
}

// InterventionEffect estima la fracción de reducción de severidad para un
// par (trastorno, modalidad): base de la tabla (0.4 si falta), por el
// factor de duración que meseta en 24 semanas, por la adherencia.
// Adherencia fuera de [0,1] o semanas negativas son entrada inválida.
func (c *TherapyCatalog) InterventionEffect(disorder string, id string, durationWeeks int, adherence float64) (float64, error) {
	if adherence < 0 || adherence > 1 {
		return 0, fmt.Errorf("%w: adherence %v outside [0,1]", ErrInvalidInput, adherence)
	}
	if durationWeeks < 0 {
		return 0, fmt.Errorf("%w: negative duration_weeks %d", ErrInvalidInput, durationWeeks)
	}

	base := 0.4
	if byModality, ok := c.effectiveness[strings.ToLower(strings.TrimSpace(disorder))]; ok {
		if v, ok := byModality[strings.ToLower(strings.TrimSpace(id))]; ok {
			base = v
		}
	}

	durationFactor := math.Min(1.0, float64(durationWeeks)/24.0)
	return round2(base * durationFactor * adherence), nil
}

// DurationImpact compara la duración real contra la recomendada y devuelve
// un multiplicador de eficacia en [0.5, 1.2].
func DurationImpact(durationWeeks, recommendedWeeks int) float64 {
	if recommendedWeeks <= 0 {
		return 1.0
	}
	ratio := float64(durationWeeks) / float64(recommendedWeeks)
	switch {
	case ratio < 0.5:
		return 0.5
	case ratio < 0.75:
		return 0.75
	case ratio <= 1.5:
		return 1.0
	default:
		return math.Min(1.2, 1.0+(ratio-1.5)*0.1)
	}
}

// MinRecommendedWeeks extrae la cota inferior de typical_duration cuando
// está codificada como rango numérico ("12-20 weeks").
func MinRecommendedWeeks(t Therapy) (int, bool) {
	s := strings.TrimSpace(t.TypicalDuration)
	idx := strings.IndexByte(s, '-')
	if idx <= 0 {
		return 0, false
	}
	head := strings.Fields(s[:idx])
	if len(head) == 0 {
		return 0, false
	}
	weeks, err := strconv.Atoi(head[len(head)-1])
	if err != nil {
		return 0, false
	}
	return weeks, true
}

// DurationAssessment describe si la duración elegida alcanza la
// recomendación mínima de la modalidad.
func DurationAssessment(durationWeeks int, t Therapy) string {
	min, ok := MinRecommendedWeeks(t)
	if ok && durationWeeks < min {
		return "shorter than recommended (may reduce efficacy)"
	}
	return "appropriate"
}

// ExplainMatch genera texto legible sobre la calidad del match.
func (c *TherapyCatalog) ExplainMatch(id string, symptoms []string, score float64) string {
	therapy, err := c.Get(id)
	if err != nil {
		return fmt.Sprintf("Unknown therapy %q.", id)
	}

	joined := strings.Join(symptoms, ", ")
	switch {
	case score >= 0.8:
		return fmt.Sprintf("%s is an excellent match (efficacy: %.0f%%) because it's specifically designed to treat %s.", therapy.Name, score*100, joined)
	case score >= 0.5:
		return fmt.Sprintf("%s is a moderate match (efficacy: %.0f%%). It may help with some symptoms but isn't optimized for all of them.", therapy.Name, score*100)
	default:
		targets := therapy.BestFor
		if len(targets) > 3 {
			targets = targets[:3]
		}
		return fmt.Sprintf("%s is a poor match (efficacy: %.0f%%). This therapy is designed for %s, not %s.", therapy.Name, score*100, strings.Join(targets, ", "), joined)
	}
}
