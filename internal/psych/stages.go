package psych

import (
	"fmt"
	"strings"
)

/*
========================
 Etapas del desarrollo
========================
*/

// EventKind clasifica el signo de un evento para elegir el multiplicador.
type EventKind string

const (
	EventTrauma   EventKind = "trauma"
	EventPositive EventKind = "positive"
)

// ParseEventKind normaliza texto libre a un EventKind cerrado.
// "achievement" y "healing" cuentan como positivos, igual que en el
// clasificador original; cualquier otra cosa es trauma.
func ParseEventKind(raw string) EventKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive", "achievement", "healing":
		return EventPositive
	default:
		return EventTrauma
	}
}

// Stage es una banda etaria con sus multiplicadores de impacto y
// descriptores de vulnerabilidad/resiliencia. Inmutable.
type Stage struct {
	Name               string   `json:"name"`
	MinAge             int      `json:"min_age"`
	MaxAge             int      `json:"max_age"` // -1 = sin cota superior
	KeyTasks           []string `json:"key_tasks"`
	Vulnerabilities    []string `json:"vulnerability_factors"`
	Resiliences        []string `json:"resilience_factors"`
	TraumaMultiplier   float64  `json:"trauma_impact_multiplier"`
	PositiveMultiplier float64  `json:"positive_impact_multiplier"`
}

// CopingCapacity estima recursos de afrontamiento por edad, escala 0.0-1.0.
type CopingCapacity struct {
	CognitiveProcessing float64 `json:"cognitive_processing"`
	EmotionalRegulation float64 `json:"emotional_regulation"`
	SocialSupportAccess float64 `json:"social_support_access"`
	VerbalArticulation  float64 `json:"verbal_articulation"`
	Agency              float64 `json:"agency"`
}

// StageTable contiene las etapas ordenadas por edad. Las bandas
// particionan [0, ∞): la última etapa no expira.
type StageTable struct {
	stages []Stage
}

// NewStageTable construye una tabla a partir de etapas ordenadas.
func NewStageTable(stages []Stage) *StageTable {
	return &StageTable{stages: stages}
}

// DefaultStageTable devuelve las cinco etapas canónicas de la psicología
// del desarrollo usadas por el simulador.
func DefaultStageTable() *StageTable {
	return NewStageTable(defaultStages)
}

// Stages devuelve una copia de las etapas en orden de edad.
func (t *StageTable) Stages() []Stage {
	out := make([]Stage, len(t.stages))
	copy(out, t.stages)
	return out
}

// Classify devuelve la etapa para una edad. Edad negativa es inválida.
func (t *StageTable) Classify(age int) (Stage, error) {
	if age < 0 {
		return Stage{}, fmt.Errorf("%w: negative age %d", ErrInvalidInput, age)
	}
	for _, s := range t.stages {
		if age >= s.MinAge && (s.MaxAge < 0 || age <= s.MaxAge) {
			return s, nil
		}
	}
	// La última etapa es abierta por arriba, así que solo se llega acá
	// con una tabla mal construida.
	last := t.stages[len(t.stages)-1]
	return last, nil
}

// ImpactMultiplier devuelve cuánto amplifica la etapa un evento del tipo
// dado. 1.0 es el baseline adulto; edades tempranas amplifican más porque
// el apego y la identidad todavía se están formando.
func (t *StageTable) ImpactMultiplier(age int, kind EventKind) (float64, error) {
	stage, err := t.Classify(age)
	if err != nil {
		return 0, err
	}
	if kind == EventPositive {
		return stage.PositiveMultiplier, nil
	}
	return stage.TraumaMultiplier, nil
}

// CopingCapacity estima la capacidad de afrontamiento apropiada a la edad.
func (t *StageTable) CopingCapacity(age int) (CopingCapacity, error) {
	stage, err := t.Classify(age)
	if err != nil {
		return CopingCapacity{}, err
	}
	if c, ok := copingByStage[stage.Name]; ok {
		return c, nil
	}
	return copingByStage["adult"], nil
}

// RecommendedTherapies lista modalidades apropiadas para la edad.
func (t *StageTable) RecommendedTherapies(age int) ([]string, error) {
	stage, err := t.Classify(age)
	if err != nil {
		return nil, err
	}
	if m, ok := therapiesByStage[stage.Name]; ok {
		return append([]string{}, m...), nil
	}
	return append([]string{}, therapiesByStage["adult"]...), nil
}

// ExplainImpact genera el bloque de contexto evolutivo que se inyecta en
// los prompts de análisis.
func (t *StageTable) ExplainImpact(age int, kind EventKind) (string, error) {
	stage, err := t.Classify(age)
	if err != nil {
		return "", err
	}
	mult, _ := t.ImpactMultiplier(age, kind)

	var b strings.Builder
	fmt.Fprintf(&b, "DEVELOPMENTAL CONTEXT (Age %d - %s):\n\n", age, titleize(stage.Name))
	fmt.Fprintf(&b, "Impact Multiplier: %.1fx (1.0 = adult baseline)\n\n", mult)
	b.WriteString("Key Developmental Tasks at This Age:\n")
	for _, task := range stage.KeyTasks {
		fmt.Fprintf(&b, "- %s\n", titleize(task))
	}
	b.WriteString("\nWhy This Age Is Particularly Vulnerable:\n")
	for _, f := range stage.Vulnerabilities {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\nAvailable Resilience Factors:\n")
	for _, f := range stage.Resiliences {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String(), nil
}

// titleize convierte "early_childhood" en "Early Childhood".
func titleize(snake string) string {
	words := strings.Split(snake, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var defaultStages = []Stage{
	{
		Name:   "early_childhood",
		MinAge: 0,
		MaxAge: 5,
		KeyTasks: []string{
			"attachment_formation",
			"basic_trust_development",
			"emotional_regulation_foundation",
			"sense_of_safety",
		},
		Vulnerabilities: []string{
			"Complete dependency on caregivers",
			"Attachment patterns being formed",
			"Limited cognitive capacity to understand events",
			"No developed coping mechanisms",
			"Preverbal trauma can become somatized",
		},
		Resiliences: []string{
			"Brain plasticity is very high",
			"Strong capacity for healing with secure attachment",
			"Present-focused (less rumination about past)",
			"Responsive to environmental changes",
		},
		TraumaMultiplier:   1.8,
		PositiveMultiplier: 1.4,
	},
	{
		Name:   "middle_childhood",
		MinAge: 6,
		MaxAge: 11,
		KeyTasks: []string{
			"identity_formation",
			"self_concept_development",
			"peer_relationships",
			"academic_competence",
			"social_skills",
		},
		Vulnerabilities: []string{
			"Self-concept still forming (trauma affects identity)",
			"Limited abstract thinking to process complex events",
			"Peer influence beginning to matter",
			"Still highly dependent on family stability",
			"Prone to self-blame for family events",
		},
		Resiliences: []string{
			"Developing coping skills",
			"Can articulate feelings (unlike early childhood)",
			"Peer support becomes available",
			"School provides stability and structure",
			"Growing sense of agency",
		},
		TraumaMultiplier:   1.5,
		PositiveMultiplier: 1.3,
	},
	{
		Name:   "adolescence",
		MinAge: 12,
		MaxAge: 18,
		KeyTasks: []string{
			"identity_consolidation",
			"autonomy_development",
			"peer_belonging",
			"sexual_identity",
			"separation_from_parents",
		},
		Vulnerabilities: []string{
			"Identity in flux (trauma can derail identity formation)",
			"Peer influence at peak (social rejection highly impactful)",
			"Risk-taking behavior increases",
			"Emotional intensity and volatility",
			"Questioning authority and support systems",
		},
		Resiliences: []string{
			"Abstract thinking allows processing",
			"Can access external support (friends, mentors)",
			"Growing independence provides options",
			"Peer support network available",
			"Emerging adult capacities",
		},
		TraumaMultiplier:   1.3,
		PositiveMultiplier: 1.2,
	},
	{
		Name:   "young_adult",
		MinAge: 19,
		MaxAge: 25,
		KeyTasks: []string{
			"attachment_style_crystallization",
			"career_identity",
			"intimate_relationships",
			"independence_consolidation",
			"life_direction_setting",
		},
		Vulnerabilities: []string{
			"Attachment patterns crystallizing (harder to change later)",
			"Relationship trauma affects future partnership patterns",
			"Career/identity setbacks feel catastrophic",
			"First time fully independent (fewer safety nets)",
			"Emerging adult stressors (finances, career, relationships)",
		},
		Resiliences: []string{
			"Fully developed cognitive capacity",
			"Can actively seek therapy and support",
			"Life experience provides context",
			"Social support networks established",
			"Agency to make life changes",
		},
		TraumaMultiplier:   1.1,
		PositiveMultiplier: 1.1,
	},
	{
		Name:   "adult",
		MinAge: 26,
		MaxAge: -1,
		KeyTasks: []string{
			"pattern_maintenance_or_change",
			"generativity",
			"relationship_maintenance",
			"career_advancement",
			"meaning_making",
		},
		Vulnerabilities: []string{
			"Established patterns harder to change",
			"May have dependents (children) affected by trauma",
			"Career/financial stakes higher",
			"Less neuroplasticity than younger ages",
			"Accumulated prior trauma compounds",
		},
		Resiliences: []string{
			"Life experience provides perspective",
			"Developed coping strategies",
			"Established support networks",
			"Resources (financial, social) for help-seeking",
			"Capacity to consciously choose change",
			"Wisdom from past experiences",
		},
		TraumaMultiplier:   1.0,
		PositiveMultiplier: 1.0,
	},
}

var copingByStage = map[string]CopingCapacity{
	"early_childhood": {
		CognitiveProcessing: 0.2,
		EmotionalRegulation: 0.1,
		SocialSupportAccess: 0.3,
		VerbalArticulation:  0.1,
		Agency:              0.1,
	},
	"middle_childhood": {
		CognitiveProcessing: 0.5,
		EmotionalRegulation: 0.4,
		SocialSupportAccess: 0.6,
		VerbalArticulation:  0.6,
		Agency:              0.3,
	},
	"adolescence": {
		CognitiveProcessing: 0.8,
		// Más baja de lo esperable por la volatilidad propia de la etapa.
		EmotionalRegulation: 0.5,
		SocialSupportAccess: 0.8,
		VerbalArticulation:  0.9,
		Agency:              0.6,
	},
	"young_adult": {
		CognitiveProcessing: 1.0,
		EmotionalRegulation: 0.7,
		SocialSupportAccess: 0.9,
		VerbalArticulation:  1.0,
		Agency:              0.9,
	},
	"adult": {
		CognitiveProcessing: 1.0,
		EmotionalRegulation: 0.8,
		SocialSupportAccess: 1.0,
		VerbalArticulation:  1.0,
		Agency:              1.0,
	},
}

var therapiesByStage = map[string][]string{
	"early_childhood":  {"play_therapy", "parent_child_interaction_therapy", "attachment_based_family_therapy"},
	"middle_childhood": {"play_therapy", "art_therapy", "CBT_adapted_for_children", "family_therapy"},
	"adolescence":      {"CBT", "DBT", "family_therapy", "group_therapy", "EMDR"},
	"young_adult":      {"CBT", "ACT", "EMDR", "IFS", "DBT", "Psychodynamic"},
	"adult":            {"CBT", "ACT", "EMDR", "IFS", "DBT", "Psychodynamic", "Somatic_Experiencing"},
}
