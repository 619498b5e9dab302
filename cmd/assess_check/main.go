package main

import (
	"fmt"
	"os"

	"persona-sim/internal/psych"
)

/*
========================
 Chequeo offline del motor
========================

Corre escenarios clínicos de referencia contra el motor determinista, sin
base de datos ni LLM. Pensado para validar a mano cambios en las tablas de
riesgo, la taxonomía o el catálogo de terapias.
*/

type Scenario struct {
	Name      string
	Backstory string
	Age       int
	Events    []psych.LifeEvent
	// El trastorno que el escenario debe producir, con severidad mínima.
	ExpectDisorder psych.DisorderID
	ExpectMinSev   float64
	// Modalidad que debería matchear bien los síntomas resultantes.
	ExpectTherapy string
}

func main() {
	taxonomy := psych.DefaultTaxonomy()
	assessor := psych.NewAssessor(taxonomy)
	catalog := psych.DefaultTherapyCatalog()
	stages := psych.DefaultStageTable()

	scenarios := []Scenario{
		{
			Name:      "Abuso temprano sostenido",
			Backstory: "Beaten and belittled through childhood.",
			Age:       25,
			Events: []psych.LifeEvent{
				{ID: "e1", Category: psych.CatAbuse, Severity: psych.SeveritySevere, AgeAtEvent: 6},
				{ID: "e2", Category: psych.CatAbuse, Severity: psych.SeverityModerate, AgeAtEvent: 9},
			},
			ExpectDisorder: "complex_ptsd",
			ExpectMinSev:   0.9,
			ExpectTherapy:  "EMDR",
		},
		{
			Name:      "Duelo en la adultez",
			Backstory: "",
			Age:       40,
			Events: []psych.LifeEvent{
				{ID: "e1", Category: psych.CatLoss, Severity: psych.SeveritySevere, AgeAtEvent: 38},
			},
			ExpectDisorder: "depression",
			ExpectMinSev:   0.6,
			ExpectTherapy:  "CBT",
		},
		{
			Name:      "Acoso escolar prolongado",
			Backstory: "Bullied and excluded, no friends at school.",
			Age:       16,
			Events: []psych.LifeEvent{
				{ID: "e1", Category: psych.CatBullying, Severity: psych.SeverityModerate, AgeAtEvent: 12},
				{ID: "e2", Category: psych.CatPeerRejection, Severity: psych.SeverityModerate, AgeAtEvent: 14},
			},
			ExpectDisorder: "social_anxiety",
			ExpectMinSev:   0.6,
			ExpectTherapy:  "CBT",
		},
		{
			Name:      "Infancia sin adversidad",
			Backstory: "A quiet childhood in a loving home.",
			Age:       10,
			Events: []psych.LifeEvent{
				{ID: "e1", Category: psych.CatAchievement, Severity: psych.SeverityMild, AgeAtEvent: 9},
			},
			ExpectDisorder: "",
			ExpectMinSev:   0,
		},
	}

	passed := 0
	for _, sc := range scenarios {
		fmt.Printf("=== Ejecutando: %s ===\n", sc.Name)

		if ok := runScenario(sc, assessor, catalog, stages); ok {
			fmt.Printf("✅ PASS [%s]\n\n", sc.Name)
			passed++
		} else {
			fmt.Printf("❌ FAIL [%s]\n\n", sc.Name)
		}
	}

	fmt.Printf("Resultado: %d/%d escenarios\n", passed, len(scenarios))
	if passed != len(scenarios) {
		os.Exit(1)
	}
}

func runScenario(sc Scenario, assessor *psych.Assessor, catalog *psych.TherapyCatalog, stages *psych.StageTable) bool {
	seeds := psych.DeduplicateSeeds(psych.AnalyzeBackstory(sc.Backstory, sc.Age))
	fmt.Printf("  semillas de backstory: %d\n", len(seeds))
	for _, seed := range seeds {
		fmt.Printf("    - %s (%.2f)\n", seed.Disorder, seed.Severity)
	}

	risks, err := assessor.Assess(sc.Events)
	if err != nil {
		fmt.Printf("  assess: %v\n", err)
		return false
	}
	for _, risk := range risks {
		fmt.Printf("  riesgo: %s = %.3f (onset %d)\n", risk.Disorder, risk.Severity, risk.OnsetAge)
	}

	if sc.ExpectDisorder == "" {
		// Escenario de control: nada severo debe aparecer.
		for _, risk := range risks {
			if risk.Severity >= 0.5 {
				fmt.Printf("  inesperado: %s = %.3f\n", risk.Disorder, risk.Severity)
				return false
			}
		}
		return true
	}

	found, sev := severityFor(sc.ExpectDisorder, seeds, risks)
	if !found || sev < sc.ExpectMinSev {
		fmt.Printf("  esperaba %s >= %.2f, obtuve %.3f (found=%v)\n", sc.ExpectDisorder, sc.ExpectMinSev, sev, found)
		return false
	}

	if sc.ExpectTherapy != "" {
		symptoms := symptomsFor(sc.ExpectDisorder, seeds, risks)
		score := catalog.MatchScore(sc.ExpectTherapy, therapyTargets(sc.ExpectDisorder))
		fmt.Printf("  match %s/%s = %.2f (%d síntomas)\n", sc.ExpectTherapy, sc.ExpectDisorder, score, len(symptoms))
		if score <= 0 {
			return false
		}
	}

	for _, ev := range sc.Events {
		if ctx, err := stages.ExplainImpact(ev.AgeAtEvent, psych.EventTrauma); err == nil && ctx == "" {
			fmt.Printf("  contexto evolutivo vacío para edad %d\n", ev.AgeAtEvent)
			return false
		}
	}
	return true
}

func severityFor(id psych.DisorderID, seeds []psych.DisorderSeed, risks []psych.DisorderRisk) (bool, float64) {
	best := 0.0
	found := false
	for _, seed := range seeds {
		if seed.Disorder == id && seed.Severity > best {
			best = seed.Severity
			found = true
		}
	}
	for _, risk := range risks {
		if risk.Disorder == id && risk.Severity > best {
			best = risk.Severity
			found = true
		}
	}
	return found, best
}

func symptomsFor(id psych.DisorderID, seeds []psych.DisorderSeed, risks []psych.DisorderRisk) []string {
	for _, risk := range risks {
		if risk.Disorder == id {
			names := make([]string, 0, len(risk.Symptoms))
			for name := range risk.Symptoms {
				names = append(names, name)
			}
			return names
		}
	}
	for _, seed := range seeds {
		if seed.Disorder == id {
			names := make([]string, 0, len(seed.SymptomDetails))
			for name := range seed.SymptomDetails {
				names = append(names, name)
			}
			return names
		}
	}
	return nil
}

// therapyTargets nombra el trastorno como síntoma tratable: el catálogo
// lista trastornos completos en best_for, no síntomas individuales.
func therapyTargets(id psych.DisorderID) []string {
	switch id {
	case "complex_ptsd":
		return []string{"complex_trauma", "ptsd"}
	case "social_anxiety":
		return []string{"social_anxiety", "anxiety"}
	default:
		return []string{string(id)}
	}
}
