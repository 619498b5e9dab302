package service

import (
	"fmt"
	"strings"

	"persona-sim/internal/domain"
	"persona-sim/internal/psych"
)

// buildInterventionNarrativePrompt arma el prompt para narrar el resultado
// de un curso terapéutico ya calculado de forma determinista.
func buildInterventionNarrativePrompt(
	persona domain.Persona,
	therapy psych.Therapy,
	target domain.DisorderScore,
	input ApplyInterventionInput,
	matchScore, oldSeverity, newSeverity float64,
) string {
	var b strings.Builder

	b.WriteString("You are a clinical psychologist summarizing the outcome of a therapeutic intervention. Respond with a short plain-text narrative (3-5 sentences), no JSON, no markdown.\n\n")

	fmt.Fprintf(&b, "PERSON:\nName: %s\nAge: %d\n\n", persona.Name, persona.Age)

	fmt.Fprintf(&b, "INTERVENTION:\nTherapy: %s\nDuration: %d weeks (%s)\nAdherence: %.2f\nTarget condition: %s\n\n",
		therapy.Name, input.DurationWeeks, psych.DurationAssessment(input.DurationWeeks, therapy), input.Adherence, target.Disorder)

	fmt.Fprintf(&b, "THERAPY PROFILE:\nMechanism: %s\nBest for: %s\nLimitations: %s\nEvidence base: %s\n\n",
		therapy.Mechanism,
		strings.Join(therapy.BestFor, ", "),
		strings.Join(therapy.Limitations, ", "),
		therapy.EvidenceBase)

	symptoms := symptomNames(target.SymptomDetails)
	fmt.Fprintf(&b, "OUTCOME (already computed, do not change the numbers):\nSymptom match score: %.2f\nSeverity before: %.2f\nSeverity after: %.2f\nSymptoms addressed: %s\n\n",
		matchScore, oldSeverity, newSeverity, strings.Join(symptoms, ", "))

	b.WriteString("Be realistic: behavioral change is not trauma resolution, symptoms improve but rarely disappear, and a poorly matched therapy helps only a little. Mention what this modality does not address.\n")
	return b.String()
}
