package service

import (
	"strings"

	"persona-sim/internal/psych"
)

/*
========================
 Clasificador de experiencias
========================
*/

// experienceClass es el resultado de clasificar una experiencia narrada:
// categoría de riesgo, severidad y signo del evento.
type experienceClass struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Kind     string `json:"kind"`
}

// classifierRule mapea keywords de la descripción a una clase. Primera
// regla que matchea gana, así que las más específicas van arriba.
type classifierRule struct {
	keywords []string
	class    experienceClass
}

var classifierRules = []classifierRule{
	{
		keywords: []string{"molest", "sexual abuse", "raped", "sexually abused"},
		class:    experienceClass{Category: "sexual_abuse", Severity: "severe", Kind: "trauma"},
	},
	{
		keywords: []string{"domestic violence", "parents fighting", "witnessed violence"},
		class:    experienceClass{Category: "domestic_violence", Severity: "severe", Kind: "trauma"},
	},
	{
		keywords: []string{"beaten", "hit me", "physical abuse", "abused", "abusive"},
		class:    experienceClass{Category: "abuse", Severity: "severe", Kind: "trauma"},
	},
	{
		keywords: []string{"neglect", "abandoned", "left alone", "uncared"},
		class:    experienceClass{Category: "neglect", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"bullied", "picked on", "teased"},
		class:    experienceClass{Category: "bullying", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"rejected", "excluded", "left out"},
		class:    experienceClass{Category: "peer_rejection", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"no friends", "isolated", "lonely", "alone for"},
		class:    experienceClass{Category: "social_isolation", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"died", "death", "passed away", "funeral", "lost my"},
		class:    experienceClass{Category: "loss", Severity: "severe", Kind: "trauma"},
	},
	{
		keywords: []string{"divorce", "separation", "broke up"},
		class:    experienceClass{Category: "loss", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"drunk", "alcoholic", "drug", "overdose"},
		class:    experienceClass{Category: "parental_substance_use", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"evicted", "homeless", "poverty", "lost the job", "fired", "couldn't afford"},
		class:    experienceClass{Category: "financial_instability", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"diagnosed", "hospital", "chronic", "illness", "sick for"},
		class:    experienceClass{Category: "chronic_illness", Severity: "moderate", Kind: "trauma"},
	},
	{
		keywords: []string{"graduated", "promoted", "award", "scholarship", "championship", "achieved"},
		class:    experienceClass{Category: "achievement", Severity: "mild", Kind: "positive"},
	},
	{
		keywords: []string{"accident", "crash", "assault", "attacked", "war", "fire", "earthquake"},
		class:    experienceClass{Category: "trauma", Severity: "severe", Kind: "trauma"},
	},
}

// classifyDeterministic clasifica por keywords, sin LLM. Si nada matchea
// asume trauma moderado: el evento llegó al registro por algo.
func classifyDeterministic(description string) experienceClass {
	lower := strings.ToLower(description)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.class
			}
		}
	}
	return experienceClass{Category: "trauma", Severity: "moderate", Kind: "trauma"}
}

// normalizeClass valida y completa una clase, venga del LLM o del caller.
func normalizeClass(cls experienceClass) (experienceClass, error) {
	sev, err := psych.ParseSeverity(cls.Severity)
	if err != nil {
		return experienceClass{}, err
	}
	cls.Severity = string(sev)
	cls.Category = strings.ToLower(strings.TrimSpace(cls.Category))
	cls.Kind = string(psych.ParseEventKind(cls.Kind))
	return cls, nil
}
