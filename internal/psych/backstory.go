package psych

import "strings"

/*
========================
 Semillas desde backstory
========================
*/

// DisorderSeed es una propuesta inicial de trastorno derivada del texto de
// backstory, antes de que exista ningún evento de vida. Puebla el estado
// sintomático en el momento de creación de la persona.
type DisorderSeed struct {
	Disorder       DisorderID         `json:"disorder"`
	Severity       float64            `json:"severity"`
	Category       string             `json:"category"`
	SymptomDetails map[string]float64 `json:"symptom_details"`
	OnsetAge       int                `json:"onset_age"`
}

// seedTemplate define un seed dentro de una regla. maxAge acota la edad de
// creación para semillas que solo aplican en infancia (-1 = sin cota).
type seedTemplate struct {
	disorder DisorderID
	severity float64
	category string
	symptoms map[string]float64
	maxAge   int
}

// backstoryRule agrupa palabras clave temáticas con las semillas que
// disparan. Coincidencia por substring, en minúsculas: el texto de
// backstory es narrativo ("was molested" debe disparar "molest").
type backstoryRule struct {
	name     string
	keywords []string
	seeds    []seedTemplate
}

var backstoryRules = []backstoryRule{
	{
		name: "caregiver_substance_use",
		keywords: []string{
			"meth", "methamphetamine", "heroin", "cocaine", "crack",
			"drug addict", "alcoholic", "drinking", "drunk",
			"substance abuse", "drug use", "overdose",
		},
		seeds: []seedTemplate{
			{
				disorder: "reactive_attachment_disorder",
				severity: 0.75,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"emotional_withdrawal":          0.8,
					"minimal_social_responsiveness": 0.7,
					"limited_positive_affect":       0.75,
					"unexplained_irritability":      0.7,
				},
				maxAge: 12,
			},
			{
				disorder: "complex_ptsd",
				severity: 0.65,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"hypervigilance":          0.8,
					"emotional_dysregulation": 0.7,
					"negative_self_concept":   0.6,
					"relationship_difficulties": 0.7,
				},
				maxAge: -1,
			},
			{
				disorder: "generalized_anxiety",
				severity: 0.6,
				category: CategoryAnxiety,
				symptoms: map[string]float64{
					"excessive_worry":          0.75,
					"restlessness":             0.65,
					"difficulty_concentrating": 0.6,
					"sleep_disturbance":        0.7,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "sexual_abuse",
		keywords: []string{
			"molest", "sexual abuse", "raped", "assault", "fondled",
			"inappropriate touch", "sexually abused",
		},
		seeds: []seedTemplate{
			{
				disorder: "ptsd",
				severity: 0.85,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"intrusive_memories": 0.9,
					"avoidance":          0.8,
					"negative_alterations_in_cognition": 0.75,
					"hyperarousal":                      0.85,
				},
				maxAge: -1,
			},
			{
				disorder: "complex_ptsd",
				severity: 0.8,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"affect_dysregulation":      0.85,
					"negative_self_concept":     0.9,
					"relationship_disturbances": 0.8,
				},
				maxAge: -1,
			},
			{
				disorder: "depression",
				severity: 0.7,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood":    0.75,
					"anhedonia":         0.7,
					"worthlessness":     0.8,
					"suicidal_ideation": 0.5,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "physical_abuse",
		keywords: []string{
			"hit", "beaten", "whipped", "physical abuse", "violence",
			"bruises", "hurt", "punched", "kicked",
		},
		seeds: []seedTemplate{
			{
				disorder: "ptsd",
				severity: 0.7,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"intrusive_memories": 0.75,
					"avoidance":          0.7,
					"hyperarousal":       0.8,
				},
				maxAge: -1,
			},
			{
				disorder: "depression",
				severity: 0.6,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood": 0.65,
					"worthlessness":  0.7,
					"fatigue":        0.6,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "neglect",
		keywords: []string{
			"neglect", "ignored", "abandoned", "left alone",
			"no food", "starving", "dirty", "uncared for",
		},
		seeds: []seedTemplate{
			{
				disorder: "reactive_attachment_disorder",
				severity: 0.7,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"emotional_withdrawal":          0.75,
					"minimal_social_responsiveness": 0.7,
					"limited_positive_affect":       0.7,
				},
				maxAge: 12,
			},
			{
				disorder: "depression",
				severity: 0.55,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood": 0.6,
					"anhedonia":      0.55,
					"worthlessness":  0.65,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "witnessed_domestic_violence",
		keywords: []string{
			"domestic violence", "parents fighting", "hit my mother",
			"witnessed violence", "saw violence",
		},
		seeds: []seedTemplate{
			{
				disorder: "ptsd",
				severity: 0.65,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"intrusive_memories": 0.7,
					"hyperarousal":       0.75,
					"avoidance":          0.6,
				},
				maxAge: -1,
			},
			{
				disorder: "generalized_anxiety",
				severity: 0.6,
				category: CategoryAnxiety,
				symptoms: map[string]float64{
					"excessive_worry":   0.7,
					"hypervigilance":    0.75,
					"sleep_disturbance": 0.65,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "bullying",
		keywords: []string{
			"bullied", "picked on", "teased", "excluded",
			"rejected by peers", "no friends",
		},
		seeds: []seedTemplate{
			{
				disorder: "social_anxiety",
				severity: 0.6,
				category: CategoryAnxiety,
				symptoms: map[string]float64{
					"fear_of_social_situations":       0.7,
					"avoidance_of_social_interaction": 0.65,
					"fear_of_negative_evaluation":     0.75,
				},
				maxAge: -1,
			},
			{
				disorder: "depression",
				severity: 0.5,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood":    0.55,
					"low_self_esteem":   0.65,
					"social_withdrawal": 0.6,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "poverty",
		keywords: []string{
			"poor", "poverty", "homeless", "no money",
			"couldn't afford", "financial stress",
		},
		seeds: []seedTemplate{
			{
				disorder: "generalized_anxiety",
				severity: 0.45,
				category: CategoryAnxiety,
				symptoms: map[string]float64{
					"excessive_worry":   0.55,
					"restlessness":      0.5,
					"sleep_disturbance": 0.45,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "chronic_illness",
		keywords: []string{
			"sick", "illness", "disease", "disability",
			"cancer", "chronic condition",
		},
		seeds: []seedTemplate{
			{
				disorder: "adjustment_disorder",
				severity: 0.5,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"anxiety":           0.55,
					"depressed_mood":    0.5,
					"difficulty_coping": 0.6,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "bereavement",
		keywords: []string{
			"died", "death", "passed away", "lost my",
			"orphaned", "funeral",
		},
		seeds: []seedTemplate{
			{
				disorder: "prolonged_grief_disorder",
				severity: 0.65,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"intense_yearning":            0.7,
					"preoccupation_with_deceased": 0.65,
					"difficulty_accepting_death":  0.6,
				},
				maxAge: -1,
			},
			{
				disorder: "depression",
				severity: 0.6,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood":    0.7,
					"anhedonia":         0.6,
					"sleep_disturbance": 0.55,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "divorce_abandonment",
		keywords: []string{
			"divorce", "divorced", "separation", "walked out",
			"custody", "never came back",
		},
		seeds: []seedTemplate{
			{
				disorder: "adjustment_disorder",
				severity: 0.55,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"emotional_distress": 0.6,
					"anxiety":            0.55,
					"depressed_mood":     0.5,
				},
				maxAge: -1,
			},
			{
				disorder: "depression",
				severity: 0.5,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood":    0.55,
					"sleep_disturbance": 0.5,
				},
				maxAge: -1,
			},
		},
	},
	{
		name: "emotional_abuse",
		keywords: []string{
			"emotional abuse", "emotionally abused", "belittled",
			"humiliated", "worthless", "screamed at", "gaslight",
		},
		seeds: []seedTemplate{
			{
				disorder: "complex_ptsd",
				severity: 0.6,
				category: CategoryTraumaStress,
				symptoms: map[string]float64{
					"negative_self_concept":           0.7,
					"emotion_regulation_difficulties": 0.6,
					"relationship_difficulties":       0.6,
				},
				maxAge: -1,
			},
			{
				disorder: "depression",
				severity: 0.55,
				category: CategoryMood,
				symptoms: map[string]float64{
					"depressed_mood": 0.6,
					"worthlessness":  0.7,
				},
				maxAge: -1,
			},
		},
	},
}

// AnalyzeBackstory analiza el texto de backstory y devuelve las semillas de
// trastornos iniciales. Texto vacío devuelve lista vacía; nunca falla.
// Varias reglas pueden disparar de forma independiente; el caller decide
// cuándo deduplicar con DeduplicateSeeds.
func AnalyzeBackstory(backstory string, baselineAge int) []DisorderSeed {
	if strings.TrimSpace(backstory) == "" {
		return nil
	}

	lower := strings.ToLower(backstory)
	var out []DisorderSeed

	for _, rule := range backstoryRules {
		if !containsAnySubstring(lower, rule.keywords) {
			continue
		}
		for _, tpl := range rule.seeds {
			if tpl.maxAge >= 0 && baselineAge > tpl.maxAge {
				continue
			}
			out = append(out, DisorderSeed{
				Disorder:       tpl.disorder,
				Severity:       tpl.severity,
				Category:       tpl.category,
				SymptomDetails: copySymptoms(tpl.symptoms),
				OnsetAge:       baselineAge,
			})
		}
	}
	return out
}

// DeduplicateSeeds fusiona propuestas repetidas del mismo trastorno
// quedándose con la de mayor severidad, descartando las demás por completo
// (ni promedio ni suma). Preserva el orden de primera aparición.
func DeduplicateSeeds(seeds []DisorderSeed) []DisorderSeed {
	best := make(map[DisorderID]int, len(seeds))
	var out []DisorderSeed

	for _, seed := range seeds {
		idx, seen := best[seed.Disorder]
		if !seen {
			best[seed.Disorder] = len(out)
			out = append(out, seed)
			continue
		}
		if seed.Severity > out[idx].Severity {
			out[idx] = seed
		}
	}
	return out
}

func containsAnySubstring(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func copySymptoms(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
