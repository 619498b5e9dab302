package psych

import (
	"regexp"
	"strings"
)

/*
========================
 Señales de entorno
========================
*/

// Límites simétricos para cada señal. Valores conservadores para no
// sobreajustar a partir de texto libre.
const (
	SignalMin = -2
	SignalMax = 2
)

// Signals resume el entorno temprano en siete dimensiones acotadas.
// threatExposure usa valores positivos para baja amenaza y negativos
// para alta amenaza.
type Signals struct {
	EmotionalSafety       int `json:"emotional_safety"`
	Stability             int `json:"stability"`
	CaregiverReliability  int `json:"caregiver_reliability"`
	AttachmentConsistency int `json:"attachment_consistency"`
	ThreatExposure        int `json:"threat_exposure"`
	SocialSafety          int `json:"social_safety"`
	ExplorationSupport    int `json:"exploration_support"`
}

// signalRule asocia una señal con sus listas de palabras clave.
// Tabla declarativa: agregar una palabra nunca toca el flujo de control.
type signalRule struct {
	assign   func(*Signals, int)
	positive []string
	negative []string
}

var signalRules = []signalRule{
	{
		assign:   func(s *Signals, v int) { s.EmotionalSafety = v },
		positive: []string{"loving", "supportive", "nurturing", "warm", "safe"},
		negative: []string{"abusive", "neglectful", "cold", "hostile", "unsafe"},
	},
	{
		assign:   func(s *Signals, v int) { s.Stability = v },
		positive: []string{"stable", "predictable", "routine", "steady"},
		negative: []string{"chaotic", "unstable", "unpredictable", "frequent", "evicted"},
	},
	{
		assign:   func(s *Signals, v int) { s.CaregiverReliability = v },
		positive: []string{"reliable", "present", "available", "attentive", "dependable", "caring"},
		negative: []string{"absent", "unavailable", "addicted", "incarcerated", "unreliable"},
	},
	{
		assign:   func(s *Signals, v int) { s.AttachmentConsistency = v },
		positive: []string{"secure", "close bond"},
		negative: []string{"inconsistent", "on and off", "hot and cold"},
	},
	{
		assign:   func(s *Signals, v int) { s.ThreatExposure = v },
		positive: []string{"protected", "peaceful", "low crime"},
		negative: []string{"violence", "violent", "crime", "danger", "threatening"},
	},
	{
		assign:   func(s *Signals, v int) { s.SocialSafety = v },
		positive: []string{"friendly", "included", "accepted", "safe school"},
		negative: []string{"bullied", "bullying", "isolated", "rejected"},
	},
	{
		assign:   func(s *Signals, v int) { s.ExplorationSupport = v },
		positive: []string{"encouraged", "curious", "creative", "explore", "adventurous"},
		negative: []string{"restricted", "controlled", "strict", "discouraged", "sheltered"},
	},
}

// wordPatterns cachea el regexp de palabra completa por keyword.
// Se construye una sola vez al cargar el paquete.
var wordPatterns = buildWordPatterns()

func buildWordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, rule := range signalRules {
		for _, kw := range append(append([]string{}, rule.positive...), rule.negative...) {
			if _, ok := patterns[kw]; ok {
				continue
			}
			patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return patterns
}

// keywordHits cuenta coincidencias de palabra completa (no substring:
// "abuse" no debe disparar dentro de "abusement").
func keywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if wordPatterns[kw].MatchString(text) {
			hits++
		}
	}
	return hits
}

// ExtractSignals infiere señales mínimas de entorno a partir de texto libre.
// Texto vacío produce señales en cero; nunca falla.
func ExtractSignals(text string) Signals {
	lower := strings.ToLower(text)

	var out Signals
	for _, rule := range signalRules {
		delta := keywordHits(lower, rule.positive) - keywordHits(lower, rule.negative)
		rule.assign(&out, clampInt(delta, SignalMin, SignalMax))
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
