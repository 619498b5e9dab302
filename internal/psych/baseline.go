package psych

/*
========================
 Baseline de personalidad
========================
*/

// Escala interna 0-100: base neutra 50, recortada al rango canónico
// [20, 80] antes de normalizar a [0.2, 0.8]. Evita extremos degenerados
// en el momento de creación.
const (
	baselineScore = 50
	traitMin      = 20
	traitMax      = 80
)

// TraitVector es el vector Big Five en escala 0.0-1.0. Las cinco claves
// están siempre presentes; un vector parcial es inválido por construcción.
type TraitVector struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// traitWeight es un término (señal × peso entero) de la combinación lineal
// de un rasgo.
type traitWeight struct {
	signal func(Signals) int
	weight int
}

// traitFormula define el delta de un rasgo: términos fijos y cota propia
// aplicada antes de sumar a la base. Cada rasgo se calcula de forma
// independiente; ningún rasgo lee el valor de otro.
type traitFormula struct {
	assign func(*TraitVector, float64)
	terms  []traitWeight
	bound  int
}

var traitFormulas = []traitFormula{
	{
		// Neuroticismo sube cuando el entorno es inseguro, inestable o amenazante.
		assign: func(t *TraitVector, v float64) { t.Neuroticism = v },
		terms: []traitWeight{
			{signal: func(s Signals) int { return -s.EmotionalSafety }, weight: 4},
			{signal: func(s Signals) int { return -s.Stability }, weight: 3},
			{signal: func(s Signals) int { return -s.ThreatExposure }, weight: 4},
		},
		bound: 12,
	},
	{
		assign: func(t *TraitVector, v float64) { t.Agreeableness = v },
		terms: []traitWeight{
			{signal: func(s Signals) int { return s.CaregiverReliability }, weight: 3},
			{signal: func(s Signals) int { return s.AttachmentConsistency }, weight: 3},
		},
		bound: 8,
	},
	{
		assign: func(t *TraitVector, v float64) { t.Extraversion = v },
		terms: []traitWeight{
			{signal: func(s Signals) int { return s.SocialSafety }, weight: 2},
			{signal: func(s Signals) int { return s.Stability }, weight: 2},
		},
		bound: 6,
	},
	{
		assign: func(t *TraitVector, v float64) { t.Conscientiousness = v },
		terms: []traitWeight{
			{signal: func(s Signals) int { return s.Stability }, weight: 2},
		},
		bound: 4,
	},
	{
		assign: func(t *TraitVector, v float64) { t.Openness = v },
		terms: []traitWeight{
			{signal: func(s Signals) int { return s.ExplorationSupport }, weight: 2},
		},
		bound: 4,
	},
}

// DeriveBaseline calcula la personalidad baseline a partir de señales de
// entorno. Función pura: misma entrada, mismo vector.
func DeriveBaseline(signals Signals) TraitVector {
	var out TraitVector
	for _, f := range traitFormulas {
		delta := 0
		for _, term := range f.terms {
			delta += term.signal(signals) * term.weight
		}
		delta = clampInt(delta, -f.bound, f.bound)

		score := clampInt(baselineScore+delta, traitMin, traitMax)
		f.assign(&out, float64(score)/100.0)
	}
	return out
}

// ClampTraits recorta un vector al rango canónico [0.0, 1.0]. Se usa al
// aplicar cambios posteriores a la creación (eventos, intervenciones).
func ClampTraits(t TraitVector) TraitVector {
	return TraitVector{
		Openness:          clampFloat(t.Openness, 0.0, 1.0),
		Conscientiousness: clampFloat(t.Conscientiousness, 0.0, 1.0),
		Extraversion:      clampFloat(t.Extraversion, 0.0, 1.0),
		Agreeableness:     clampFloat(t.Agreeableness, 0.0, 1.0),
		Neuroticism:       clampFloat(t.Neuroticism, 0.0, 1.0),
	}
}

// Resilience calcula un factor 0.0-1.0 a partir del vector actual:
// estabilidad (bajo neuroticismo) pesa 60%, coping 25%, energía social 15%.
func (t TraitVector) Resilience() float64 {
	stability := 1.0 - t.Neuroticism
	coping := t.Conscientiousness
	energy := t.Extraversion
	return clampFloat(stability*0.6+coping*0.25+energy*0.15, 0.0, 1.0)
}
