package psych

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"
)

/*
========================
 Evaluación de síntomas
========================
*/

// EventCategory clasifica un evento de vida según la tabla de riesgo.
// Una categoría fuera de la tabla no aporta nada y no es un error.
type EventCategory string

const (
	CatTrauma               EventCategory = "trauma"
	CatNeglect              EventCategory = "neglect"
	CatAbuse                EventCategory = "abuse"
	CatLoss                 EventCategory = "loss"
	CatAchievement          EventCategory = "achievement"
	CatSocialIsolation      EventCategory = "social_isolation"
	CatBullying             EventCategory = "bullying"
	CatParentalSubstanceUse EventCategory = "parental_substance_use"
	CatDomesticViolence     EventCategory = "domestic_violence"
	CatSexualAbuse          EventCategory = "sexual_abuse"
	CatFinancialInstability EventCategory = "financial_instability"
	CatChronicIllness       EventCategory = "chronic_illness"
	CatPeerRejection        EventCategory = "peer_rejection"
)

// SeverityLevel es la severidad cualitativa de un evento. Enum cerrado:
// un valor desconocido es entrada inválida, nunca se coerciona en silencio.
type SeverityLevel string

const (
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
	SeverityExtreme  SeverityLevel = "extreme"
)

var severityMultipliers = map[SeverityLevel]float64{
	SeverityMild:     0.3,
	SeverityModerate: 0.6,
	SeveritySevere:   0.9,
	SeverityExtreme:  1.0,
}

// ParseSeverity valida texto libre contra el enum.
func ParseSeverity(raw string) (SeverityLevel, error) {
	s := SeverityLevel(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := severityMultipliers[s]; !ok {
		return "", fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, raw)
	}
	return s, nil
}

// LifeEvent es la entrada mínima del fold de evaluación.
type LifeEvent struct {
	ID         string        `json:"id"`
	Category   EventCategory `json:"category"`
	Severity   SeverityLevel `json:"severity"`
	AgeAtEvent int           `json:"age_at_event"`
}

// DisorderRisk es la acumulación por trastorno: severidad saturada en 1.0,
// edad mínima de inicio y eventos que contribuyeron.
type DisorderRisk struct {
	Disorder           DisorderID         `json:"disorder"`
	Category           string             `json:"category"`
	Severity           float64            `json:"severity"`
	OnsetAge           int                `json:"onset_age"`
	ContributingEvents []string           `json:"contributing_events"`
	Symptoms           map[string]float64 `json:"symptoms"`
}

// ageWindow define la ventana de vulnerabilidad etaria de un trastorno.
// MinAge < 0 significa sin cota inferior.
type ageWindow struct {
	minAge     int
	maxAge     int
	multiplier float64
}

// Tabla categoría → riesgo base por trastorno. Dato declarativo: sumar un
// trastorno a una categoría no toca el algoritmo.
var defaultRiskTable = map[EventCategory]map[DisorderID]float64{
	CatTrauma: {
		"ptsd":                   0.7,
		"complex_ptsd":           0.5,
		"depression":             0.6,
		"generalized_anxiety":    0.5,
		"substance_use_disorder": 0.4,
	},
	CatNeglect: {
		"reactive_attachment_disorder": 0.8,
		"depression":                   0.6,
		"avoidant_personality":         0.4,
		"dependent_personality":        0.3,
		"complex_ptsd":                 0.6,
	},
	CatAbuse: {
		"ptsd":                   0.8,
		"complex_ptsd":           0.7,
		"borderline_personality": 0.6,
		"depression":             0.7,
		"substance_use_disorder": 0.5,
	},
	CatLoss: {
		"depression":               0.7,
		"prolonged_grief_disorder": 0.6,
		"generalized_anxiety":      0.4,
		"substance_use_disorder":   0.3,
	},
	CatAchievement: {
		// Elogio excesivo y presión de rendimiento también dejan marca.
		"narcissistic_personality":         0.2,
		"obsessive_compulsive_personality": 0.3,
		"generalized_anxiety":              0.2,
	},
	CatSocialIsolation: {
		"social_anxiety":       0.6,
		"depression":           0.5,
		"avoidant_personality": 0.4,
		"schizoid_personality": 0.3,
	},
	CatBullying: {
		"social_anxiety":       0.7,
		"depression":           0.6,
		"ptsd":                 0.5,
		"avoidant_personality": 0.4,
	},
	CatParentalSubstanceUse: {
		"substance_use_disorder":       0.6,
		"generalized_anxiety":          0.5,
		"reactive_attachment_disorder": 0.6,
		"dependent_personality":        0.4,
	},
	CatDomesticViolence: {
		"ptsd":                0.8,
		"complex_ptsd":        0.7,
		"depression":          0.6,
		"generalized_anxiety": 0.7,
	},
	CatSexualAbuse: {
		"ptsd":                   0.9,
		"complex_ptsd":           0.8,
		"hypersexuality":         0.4,
		"sexual_dysfunction":     0.6,
		"borderline_personality": 0.5,
	},
	CatFinancialInstability: {
		"generalized_anxiety": 0.6,
		"depression":          0.4,
		"hoarding_disorder":   0.3,
		"kleptomania":         0.1,
	},
	CatChronicIllness: {
		"depression":               0.6,
		"generalized_anxiety":      0.5,
		"illness_anxiety_disorder": 0.4,
		"somatic_symptom_disorder": 0.3,
	},
	CatPeerRejection: {
		"social_anxiety":       0.7,
		"depression":           0.5,
		"avoidant_personality": 0.5,
	},
}

// Ventanas etarias: algunos trastornos pegan más fuerte si el evento cae
// dentro de la ventana de formación correspondiente.
var defaultAgeVulnerability = map[DisorderID]ageWindow{
	"reactive_attachment_disorder":     {minAge: -1, maxAge: 5, multiplier: 2.0},
	"complex_ptsd":                     {minAge: -1, maxAge: 12, multiplier: 1.5},
	"borderline_personality":           {minAge: -1, maxAge: 18, multiplier: 1.3},
	"avoidant_personality":             {minAge: -1, maxAge: 18, multiplier: 1.3},
	"dependent_personality":            {minAge: -1, maxAge: 18, multiplier: 1.3},
	"obsessive_compulsive_personality": {minAge: -1, maxAge: 18, multiplier: 1.3},
	"substance_use_disorder":           {minAge: 13, maxAge: 25, multiplier: 1.4},
}

// Assessor evalúa qué trastornos desarrolla una persona a partir de su
// historia completa de eventos. Es un fold puro: se reconstruye desde cero
// en cada llamada, nunca acumula estado entre llamadas.
type Assessor struct {
	taxonomy      *Taxonomy
	riskTable     map[EventCategory]map[DisorderID]float64
	vulnerability map[DisorderID]ageWindow
	variance      func() float64
}

// AssessorOption configura un Assessor.
type AssessorOption func(*Assessor)

// WithVariance inyecta la fuente de varianza usada al expandir la severidad
// agregada en síntomas individuales. Por defecto la varianza es cero, así
// Assess es determinista y reproducible.
func WithVariance(fn func() float64) AssessorOption {
	return func(a *Assessor) { a.variance = fn }
}

// WithRiskTable reemplaza la tabla de riesgo (fixtures en tests).
func WithRiskTable(table map[EventCategory]map[DisorderID]float64) AssessorOption {
	return func(a *Assessor) { a.riskTable = table }
}

// UniformVariance reproduce el jitter ±20% del comportamiento histórico con
// un generador sembrable explícito.
func UniformVariance(r *rand.Rand) func() float64 {
	return func() float64 { return r.Float64()*0.4 - 0.2 }
}

// NewAssessor construye un evaluador sobre una taxonomía de solo lectura.
func NewAssessor(taxonomy *Taxonomy, opts ...AssessorOption) *Assessor {
	a := &Assessor{
		taxonomy:      taxonomy,
		riskTable:     defaultRiskTable,
		vulnerability: defaultAgeVulnerability,
		variance:      func() float64 { return 0 },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assess recorre la historia completa de eventos y devuelve la acumulación
// por trastorno. Lista vacía devuelve lista vacía. El orden de los eventos
// no cambia las severidades finales (suma saturada conmutativa); el
// resultado sale en orden determinista: severidad descendente, id como
// desempate.
func (a *Assessor) Assess(events []LifeEvent) ([]DisorderRisk, error) {
	scores := make(map[DisorderID]*DisorderRisk)

	for i, ev := range events {
		if err := validateEvent(ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		affected, ok := a.riskTable[ev.Category]
		if !ok {
			continue
		}

		sevMult := severityMultipliers[ev.Severity]
		for disorder, baseRisk := range affected {
			contribution := baseRisk * sevMult * a.ageMultiplier(disorder, ev.AgeAtEvent)

			risk, seen := scores[disorder]
			if !seen {
				risk = &DisorderRisk{
					Disorder: disorder,
					OnsetAge: ev.AgeAtEvent,
				}
				scores[disorder] = risk
			}

			// Suma saturada: nunca pasa de 1.0 y nunca baja dentro del fold.
			risk.Severity = math.Min(1.0, risk.Severity+contribution)
			risk.ContributingEvents = append(risk.ContributingEvents, ev.ID)
			if ev.AgeAtEvent < risk.OnsetAge {
				risk.OnsetAge = ev.AgeAtEvent
			}
		}
	}

	out := make([]DisorderRisk, 0, len(scores))
	for _, risk := range scores {
		if risk.Severity <= 0 {
			continue
		}
		if d, err := a.taxonomy.Get(risk.Disorder); err == nil {
			risk.Category = d.Category
		} else {
			risk.Category = "Unknown"
		}
		risk.Symptoms = a.SymptomBreakdown(risk.Disorder, risk.Severity)
		sort.Strings(risk.ContributingEvents)
		out = append(out, *risk)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity > out[j].Severity
		}
		return out[i].Disorder < out[j].Disorder
	})
	return out, nil
}

// SymptomBreakdown reparte la severidad agregada entre los síntomas del
// trastorno según la taxonomía, con la varianza inyectada y recorte a [0,1].
func (a *Assessor) SymptomBreakdown(id DisorderID, overall float64) map[string]float64 {
	symptoms := a.taxonomy.Symptoms(id)
	if len(symptoms) == 0 {
		return map[string]float64{}
	}

	out := make(map[string]float64, len(symptoms))
	for _, s := range symptoms {
		v := clampFloat(overall+a.variance(), 0.0, 1.0)
		out[s] = round2(v)
	}
	return out
}

func (a *Assessor) ageMultiplier(disorder DisorderID, age int) float64 {
	w, ok := a.vulnerability[disorder]
	if !ok {
		return 1.0
	}
	if age > w.maxAge {
		return 1.0
	}
	if w.minAge >= 0 && age < w.minAge {
		return 1.0
	}
	return w.multiplier
}

func validateEvent(ev LifeEvent) error {
	if strings.TrimSpace(ev.ID) == "" {
		return fmt.Errorf("%w: event without id", ErrInvalidInput)
	}
	if ev.AgeAtEvent < 0 {
		return fmt.Errorf("%w: negative age_at_event %d", ErrInvalidInput, ev.AgeAtEvent)
	}
	if _, ok := severityMultipliers[ev.Severity]; !ok {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, ev.Severity)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
