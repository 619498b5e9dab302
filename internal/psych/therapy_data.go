package psych

// Ocho modalidades basadas en evidencia. Dato, no lógica.

var defaultTherapies = []Therapy{
	{
		ID:   "CBT",
		Name: "Cognitive Behavioral Therapy",
		BestFor: []string{
			"depression",
			"anxiety",
			"negative_thought_patterns",
			"phobias",
			"panic_disorder",
			"social_anxiety",
		},
		Mechanism: "Challenges and restructures maladaptive thoughts and beliefs through systematic cognitive reframing and behavioral experiments",
		Limitations: []string{
			"Does not directly address trauma memory processing",
			"Limited effectiveness for deep attachment wounds",
			"Requires cognitive capacity and insight",
			"May not address root causes in complex trauma",
		},
		TypicalDuration: "12-20 weeks",
		EvidenceBase:    "Extensive RCT support for anxiety and depression",
	},
	{
		ID:   "ACT",
		Name: "Acceptance & Commitment Therapy",
		BestFor: []string{
			"hoarding",
			"ocd",
			"chronic_pain",
			"avoidance_behaviors",
			"experiential_avoidance",
			"anxiety",
		},
		Mechanism: "Increases psychological flexibility through acceptance of difficult thoughts/feelings while committing to values-based action",
		Limitations: []string{
			"Requires cognitive capacity for metaphors and exercises",
			"Less effective for acute trauma without stabilization",
			"May be challenging for highly dissociative individuals",
			"Not designed for deep trauma processing",
		},
		TypicalDuration: "8-16 weeks",
		EvidenceBase:    "Strong evidence for OCD, chronic pain, and behavioral avoidance",
	},
	{
		ID:   "EMDR",
		Name: "Eye Movement Desensitization & Reprocessing",
		BestFor: []string{
			"ptsd",
			"trauma",
			"phobias",
			"intrusive_memories",
			"single_incident_trauma",
			"panic_attacks",
		},
		Mechanism: "Uses bilateral stimulation to facilitate reprocessing of traumatic memories, reducing emotional charge and maladaptive cognitions",
		Limitations: []string{
			"Not appropriate during active psychosis",
			"Requires emotional stability to process trauma",
			"Less effective for complex developmental trauma without preparation",
			"May initially increase distress before improvement",
		},
		TypicalDuration: "6-12 sessions for single trauma, longer for complex trauma",
		EvidenceBase:    "Gold standard for PTSD, WHO-recommended",
	},
	{
		ID:   "IFS",
		Name: "Internal Family Systems",
		BestFor: []string{
			"complex_trauma",
			"dissociation",
			"inner_conflict",
			"self_criticism",
			"childhood_trauma",
			"parts_work",
		},
		Mechanism: "Works with different 'parts' of self to heal internal conflicts, access Self-energy, and unburden traumatized parts",
		Limitations: []string{
			"Requires introspective capacity and imagination",
			"Slower for immediate behavioral change",
			"May be abstract for concrete thinkers",
			"Requires skilled therapist for complex cases",
		},
		TypicalDuration: "6 months - 2 years",
		EvidenceBase:    "Growing research base, particularly strong for complex trauma and eating disorders",
	},
	{
		ID:   "DBT",
		Name: "Dialectical Behavior Therapy",
		BestFor: []string{
			"emotion_dysregulation",
			"bpd",
			"self_harm",
			"suicidal_ideation",
			"impulsivity",
			"relationship_instability",
		},
		Mechanism: "Teaches distress tolerance, emotion regulation, interpersonal effectiveness, and mindfulness skills through structured program",
		Limitations: []string{
			"Requires commitment to skills practice and homework",
			"Intensive program may not be accessible to all",
			"May feel overly structured for some individuals",
			"Requires both individual and group components for full model",
		},
		TypicalDuration: "6 months - 1 year (structured program)",
		EvidenceBase:    "Gold standard for BPD, strong evidence for suicidal behaviors",
	},
	{
		ID:   "Somatic_Experiencing",
		Name: "Somatic Experiencing",
		BestFor: []string{
			"trauma",
			"hypervigilance",
			"chronic_anxiety",
			"nervous_system_dysregulation",
			"body_based_trauma",
			"freeze_response",
		},
		Mechanism: "Bottom-up processing through body sensations to release trapped survival energy and restore nervous system regulation",
		Limitations: []string{
			"Slower progress than some approaches",
			"Requires body awareness and tolerance of sensations",
			"May be challenging for highly dissociated individuals",
			"Less research support than top-down approaches",
		},
		TypicalDuration: "Variable (months to years)",
		EvidenceBase:    "Moderate research support, strong clinical endorsement",
	},
	{
		ID:   "Psychodynamic",
		Name: "Psychodynamic Therapy",
		BestFor: []string{
			"attachment_wounds",
			"relationship_patterns",
			"insight_seeking",
			"transference_patterns",
			"unconscious_conflicts",
			"personality_patterns",
		},
		Mechanism: "Explores unconscious patterns, early relationships, and defenses to increase insight and transform relational templates",
		Limitations: []string{
			"Slow behavioral change",
			"May activate defenses and resistance",
			"Requires tolerance for ambiguity and exploration",
			"Less structured than other approaches",
		},
		TypicalDuration: "1+ years (long-term)",
		EvidenceBase:    "Solid evidence for depression and personality disorders, particularly long-term outcomes",
	},
	{
		ID:   "ERP",
		Name: "Exposure & Response Prevention",
		BestFor: []string{
			"ocd",
			"specific_phobias",
			"panic_disorder",
			"contamination_fears",
			"compulsive_behaviors",
			"health_anxiety",
		},
		Mechanism: "Gradual exposure to feared stimuli while preventing compulsive responses, leading to habituation and extinction",
		Limitations: []string{
			"Can be distressing during exposure exercises",
			"Not appropriate for complex trauma without preparation",
			"Requires high motivation and distress tolerance",
			"May not address underlying trauma or attachment issues",
		},
		TypicalDuration: "12-16 weeks",
		EvidenceBase:    "Gold standard for OCD, strong evidence for specific phobias",
	},
}

// Efectividad base por (trastorno, modalidad). Ausencia → 0.4 por defecto.
var defaultEffectiveness = map[string]map[string]float64{
	"depression": {
		"CBT":         0.5,
		"medication":  0.6,
		"combination": 0.7,
	},
	"anxiety": {
		"CBT":              0.6,
		"exposure_therapy": 0.7,
		"medication":       0.5,
	},
	"ptsd": {
		"EMDR":       0.6,
		"CPT":        0.6,
		"PE":         0.7,
		"medication": 0.4,
	},
	"ocd": {
		"ERP":         0.7,
		"medication":  0.5,
		"combination": 0.75,
	},
	"borderline_personality": {
		"DBT":            0.6,
		"schema_therapy": 0.5,
		"MBT":            0.5,
	},
	"substance_use": {
		"MAT":         0.7,
		"12_step":     0.4,
		"CBT":         0.5,
		"residential": 0.6,
	},
	"eating_disorders": {
		"FBT":        0.7,
		"CBT_E":      0.6,
		"medication": 0.3,
	},
}
