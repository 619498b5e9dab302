package service

import (
	"fmt"
	"strings"

	"persona-sim/internal/psych"
)

// buildClassifierPrompt arma el prompt para clasificar una experiencia
// narrada, inyectando el contexto evolutivo de la edad del evento.
func buildClassifierPrompt(description string, age int, stageContext string) string {
	var b strings.Builder

	b.WriteString(`You are a clinical psychologist classifying a life event for a psychological simulation. Read the event description and respond with ONLY a JSON object in this exact format:
{
  "category": "abuse",
  "severity": "severe",
  "kind": "trauma"
}

Valid categories: trauma, neglect, abuse, loss, achievement, social_isolation, bullying, parental_substance_use, domestic_violence, sexual_abuse, financial_instability, chronic_illness, peer_rejection.
Valid severities: mild, moderate, severe, extreme.
Valid kinds: trauma, positive.

`)
	if stageContext != "" {
		b.WriteString(stageContext)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Event (at age %d):\n%s\n", age, strings.TrimSpace(description))
	return b.String()
}

// stageContextFor devuelve el bloque de contexto evolutivo, o vacío si la
// edad es inválida.
func stageContextFor(stages *psych.StageTable, age int, kind psych.EventKind) string {
	if stages == nil {
		return ""
	}
	ctx, err := stages.ExplainImpact(age, kind)
	if err != nil {
		return ""
	}
	return ctx
}
