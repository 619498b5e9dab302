package psych

// Catálogo de referencia alineado a DSM-5-TR e ICD-11. Es dato, no lógica:
// agregar un trastorno nunca toca código del motor.

// Nombres canónicos de categorías.
const (
	CategoryMood               = "Mood Disorders"
	CategoryAnxiety            = "Anxiety Disorders"
	CategoryTraumaStress       = "Trauma and Stress Disorders"
	CategoryPersonalityA       = "Personality Disorders (Cluster A)"
	CategoryPersonalityB       = "Personality Disorders (Cluster B)"
	CategoryPersonalityC       = "Personality Disorders (Cluster C)"
	CategoryImpulseControl     = "Impulse Control Disorders"
	CategorySubstanceUse       = "Substance Use Disorders"
	CategorySomatic            = "Somatic Symptom Disorders"
	CategoryEating             = "Eating Disorders"
	CategoryOCDRelated         = "OCD and Related Disorders"
	CategorySexual             = "Sexual Disorders"
	CategoryPsychotic          = "Psychotic Disorders"
	CategoryNeurodevelopmental = "Neurodevelopmental Disorders"
)

var defaultDisorders = []Disorder{
	// ----- Mood -----
	{
		ID:       "depression",
		Category: CategoryMood,
		DSMCode:  "F32.x / F33.x",
		FullName: "Major Depressive Disorder",
		Symptoms: []string{
			"depressed_mood",
			"anhedonia",
			"fatigue",
			"worthlessness",
			"concentration_difficulty",
			"sleep_disturbance",
			"appetite_change",
			"psychomotor_changes",
			"suicidal_ideation",
		},
		Comorbidities: []string{"anxiety", "substance_use", "personality_disorders"},
	},
	{
		ID:       "bipolar_disorder",
		Category: CategoryMood,
		DSMCode:  "F31.x",
		FullName: "Bipolar I/II Disorder",
		Symptoms: []string{
			"manic_episodes",
			"hypomanic_episodes",
			"depressive_episodes",
			"racing_thoughts",
			"grandiosity",
			"decreased_need_for_sleep",
			"increased_goal_directed_activity",
			"risky_behavior",
			"irritability",
		},
		Subtypes:      []string{"bipolar_i", "bipolar_ii", "cyclothymic"},
		Comorbidities: []string{"anxiety", "substance_use", "adhd"},
	},
	{
		ID:       "persistent_depressive_disorder",
		Category: CategoryMood,
		DSMCode:  "F34.1",
		FullName: "Persistent Depressive Disorder (Dysthymia)",
		Symptoms: []string{
			"chronic_low_mood",
			"low_energy",
			"poor_concentration",
			"hopelessness",
			"low_self_esteem",
		},
	},

	// ----- Anxiety -----
	{
		ID:       "generalized_anxiety",
		Category: CategoryAnxiety,
		DSMCode:  "F41.1",
		FullName: "Generalized Anxiety Disorder",
		Symptoms: []string{
			"excessive_worry",
			"restlessness",
			"fatigue",
			"concentration_difficulty",
			"irritability",
			"muscle_tension",
			"sleep_disturbance",
		},
	},
	{
		ID:       "panic_disorder",
		Category: CategoryAnxiety,
		DSMCode:  "F41.0",
		FullName: "Panic Disorder",
		Symptoms: []string{
			"panic_attacks",
			"fear_of_future_attacks",
			"avoidance_behavior",
			"heart_palpitations",
			"sweating",
			"trembling",
			"shortness_of_breath",
			"derealization",
			"fear_of_losing_control",
		},
	},
	{
		ID:       "social_anxiety",
		Category: CategoryAnxiety,
		DSMCode:  "F40.10",
		FullName: "Social Anxiety Disorder",
		Symptoms: []string{
			"fear_of_social_situations",
			"fear_of_judgment",
			"avoidance_of_social_events",
			"performance_anxiety",
			"blushing",
			"trembling_in_social_contexts",
		},
	},
	{
		ID:       "specific_phobias",
		Category: CategoryAnxiety,
		DSMCode:  "F40.2x",
		FullName: "Specific Phobia",
		Symptoms: []string{
			"intense_fear_of_specific_object",
			"avoidance_behavior",
			"immediate_anxiety_response",
		},
		Subtypes: []string{
			"animal_phobia",
			"natural_environment_phobia",
			"blood_injection_injury_phobia",
			"situational_phobia",
		},
	},

	// ----- Trauma y estrés -----
	{
		ID:       "ptsd",
		Category: CategoryTraumaStress,
		DSMCode:  "F43.10",
		FullName: "Post-Traumatic Stress Disorder",
		Symptoms: []string{
			"intrusive_memories",
			"flashbacks",
			"nightmares",
			"avoidance_of_reminders",
			"negative_mood_changes",
			"hypervigilance",
			"exaggerated_startle_response",
			"emotional_numbing",
			"dissociation",
		},
		Subtypes: []string{"acute", "chronic", "delayed_onset"},
	},
	{
		ID:       "complex_ptsd",
		Category: CategoryTraumaStress,
		DSMCode:  "ICD-11: 6B41",
		FullName: "Complex PTSD",
		Symptoms: []string{
			"ptsd_symptoms",
			"emotion_regulation_difficulties",
			"negative_self_concept",
			"relationship_difficulties",
			"dissociation",
			"somatic_symptoms",
		},
	},
	{
		ID:       "acute_stress_disorder",
		Category: CategoryTraumaStress,
		DSMCode:  "F43.0",
		FullName: "Acute Stress Disorder",
		Symptoms: []string{
			"intrusive_symptoms",
			"negative_mood",
			"dissociative_symptoms",
			"avoidance",
			"hyperarousal",
		},
	},
	{
		ID:       "adjustment_disorder",
		Category: CategoryTraumaStress,
		DSMCode:  "F43.2x",
		FullName: "Adjustment Disorder",
		Symptoms: []string{
			"emotional_distress",
			"anxiety",
			"depressed_mood",
			"difficulty_functioning",
			"social_withdrawal",
			"sleep_disturbance",
		},
	},
	{
		ID:       "prolonged_grief_disorder",
		Category: CategoryTraumaStress,
		DSMCode:  "F43.81",
		FullName: "Prolonged Grief Disorder",
		Symptoms: []string{
			"intense_yearning",
			"preoccupation_with_deceased",
			"difficulty_accepting_death",
			"emotional_pain",
			"avoidance_of_reminders",
			"identity_disruption",
		},
	},
	{
		ID:       "reactive_attachment_disorder",
		Category: CategoryTraumaStress,
		DSMCode:  "F94.1",
		FullName: "Reactive Attachment Disorder",
		Symptoms: []string{
			"emotional_withdrawal",
			"limited_positive_affect",
			"minimal_social_responsiveness",
			"unexplained_irritability",
			"sadness_or_fearfulness",
			"difficulty_seeking_comfort",
		},
	},

	// ----- Personalidad cluster A -----
	{
		ID:       "paranoid_personality",
		Category: CategoryPersonalityA,
		DSMCode:  "F60.0",
		FullName: "Paranoid Personality Disorder",
		Symptoms: []string{
			"pervasive_distrust",
			"suspiciousness",
			"interpreting_benign_remarks_as_threatening",
			"holding_grudges",
			"perceiving_attacks",
			"doubts_about_loyalty",
		},
	},
	{
		ID:       "schizoid_personality",
		Category: CategoryPersonalityA,
		DSMCode:  "F60.1",
		FullName: "Schizoid Personality Disorder",
		Symptoms: []string{
			"detachment_from_relationships",
			"restricted_emotional_expression",
			"lack_of_desire_for_relationships",
			"preference_for_solitary_activities",
			"emotional_coldness",
		},
	},
	{
		ID:       "schizotypal_personality",
		Category: CategoryPersonalityA,
		DSMCode:  "F21",
		FullName: "Schizotypal Personality Disorder",
		Symptoms: []string{
			"odd_beliefs",
			"unusual_perceptual_experiences",
			"eccentric_behavior",
			"social_anxiety",
			"paranoid_ideation",
			"constricted_affect",
		},
	},

	// ----- Personalidad cluster B -----
	{
		ID:       "antisocial_personality",
		Category: CategoryPersonalityB,
		DSMCode:  "F60.2",
		FullName: "Antisocial Personality Disorder",
		Symptoms: []string{
			"disregard_for_rights_of_others",
			"deceitfulness",
			"impulsivity",
			"irritability",
			"aggression",
			"reckless_disregard_for_safety",
			"lack_of_remorse",
		},
	},
	{
		ID:       "borderline_personality",
		Category: CategoryPersonalityB,
		DSMCode:  "F60.3",
		FullName: "Borderline Personality Disorder",
		Symptoms: []string{
			"fear_of_abandonment",
			"unstable_relationships",
			"identity_disturbance",
			"impulsivity",
			"self_harm",
			"suicidal_behavior",
			"affective_instability",
			"chronic_emptiness",
			"anger_regulation_difficulty",
			"dissociation_under_stress",
		},
	},
	{
		ID:       "histrionic_personality",
		Category: CategoryPersonalityB,
		DSMCode:  "F60.4",
		FullName: "Histrionic Personality Disorder",
		Symptoms: []string{
			"excessive_emotionality",
			"attention_seeking",
			"inappropriately_seductive",
			"shallow_emotions",
			"dramatic_behavior",
			"suggestibility",
			"considering_relationships_more_intimate_than_they_are",
		},
	},
	{
		ID:       "narcissistic_personality",
		Category: CategoryPersonalityB,
		DSMCode:  "F60.81",
		FullName: "Narcissistic Personality Disorder",
		Symptoms: []string{
			"grandiosity",
			"need_for_admiration",
			"lack_of_empathy",
			"sense_of_entitlement",
			"exploitation_of_others",
			"envy",
			"arrogance",
			"preoccupation_with_fantasies_of_success",
		},
		Subtypes: []string{"grandiose", "vulnerable"},
	},

	// ----- Personalidad cluster C -----
	{
		ID:       "avoidant_personality",
		Category: CategoryPersonalityC,
		DSMCode:  "F60.6",
		FullName: "Avoidant Personality Disorder",
		Symptoms: []string{
			"social_inhibition",
			"feelings_of_inadequacy",
			"hypersensitivity_to_criticism",
			"avoidance_of_interpersonal_contact",
			"reluctance_to_take_risks",
			"views_self_as_socially_inept",
		},
	},
	{
		ID:       "dependent_personality",
		Category: CategoryPersonalityC,
		DSMCode:  "F60.7",
		FullName: "Dependent Personality Disorder",
		Symptoms: []string{
			"excessive_need_to_be_taken_care_of",
			"submissive_behavior",
			"fear_of_separation",
			"difficulty_making_decisions",
			"difficulty_disagreeing",
			"urgency_to_obtain_new_relationship_when_one_ends",
		},
	},
	{
		ID:       "obsessive_compulsive_personality",
		Category: CategoryPersonalityC,
		DSMCode:  "F60.5",
		FullName: "Obsessive-Compulsive Personality Disorder",
		Symptoms: []string{
			"preoccupation_with_orderliness",
			"perfectionism",
			"need_for_control",
			"rigidity",
			"stubbornness",
			"overconscientiousness",
			"difficulty_delegating",
			"hoarding_worthless_objects",
		},
	},

	// ----- Control de impulsos -----
	{
		ID:       "kleptomania",
		Category: CategoryImpulseControl,
		DSMCode:  "F63.2",
		FullName: "Kleptomania",
		Symptoms: []string{
			"recurrent_failure_to_resist_stealing",
			"tension_before_theft",
			"pleasure_during_theft",
			"guilt_after_theft",
			"stealing_not_motivated_by_need",
		},
	},
	{
		ID:       "pyromania",
		Category: CategoryImpulseControl,
		DSMCode:  "F63.1",
		FullName: "Pyromania",
		Symptoms: []string{
			"deliberate_fire_setting",
			"tension_before_act",
			"fascination_with_fire",
			"pleasure_from_fire_setting",
			"not_motivated_by_monetary_gain",
		},
	},
	{
		ID:       "pathological_gambling",
		Category: CategoryImpulseControl,
		DSMCode:  "F63.0",
		FullName: "Gambling Disorder",
		Symptoms: []string{
			"preoccupation_with_gambling",
			"need_to_gamble_with_increasing_amounts",
			"restlessness_when_cutting_down",
			"gambling_to_escape_problems",
			"chasing_losses",
			"lying_about_gambling",
			"jeopardizing_relationships_for_gambling",
			"relying_on_others_for_money",
		},
	},
	{
		ID:       "intermittent_explosive_disorder",
		Category: CategoryImpulseControl,
		DSMCode:  "F63.81",
		FullName: "Intermittent Explosive Disorder",
		Symptoms: []string{
			"recurrent_behavioral_outbursts",
			"verbal_aggression",
			"physical_aggression",
			"rage_disproportionate_to_situation",
			"impulsive_aggression",
		},
	},

	// ----- Uso de sustancias -----
	{
		ID:       "alcohol_use_disorder",
		Category: CategorySubstanceUse,
		DSMCode:  "F10.xx",
		FullName: "Alcohol Use Disorder",
		Symptoms: []string{
			"tolerance",
			"withdrawal",
			"consuming_more_than_intended",
			"unsuccessful_efforts_to_cut_down",
			"time_spent_obtaining_alcohol",
			"craving",
			"failure_to_fulfill_obligations",
			"continued_use_despite_problems",
			"giving_up_activities",
			"use_in_hazardous_situations",
		},
	},
	{
		ID:       "opioid_use_disorder",
		Category: CategorySubstanceUse,
		DSMCode:  "F11.xx",
		FullName: "Opioid Use Disorder",
		Symptoms: []string{
			"tolerance",
			"withdrawal",
			"using_more_than_intended",
			"unsuccessful_efforts_to_cut_down",
			"time_spent_obtaining_opioids",
			"craving",
			"continued_use_despite_problems",
		},
	},
	{
		ID:       "cannabis_use_disorder",
		Category: CategorySubstanceUse,
		DSMCode:  "F12.xx",
		FullName: "Cannabis Use Disorder",
		Symptoms: []string{
			"tolerance",
			"withdrawal",
			"using_more_than_intended",
			"craving",
			"failure_to_fulfill_obligations",
		},
	},
	{
		ID:       "stimulant_use_disorder",
		Category: CategorySubstanceUse,
		DSMCode:  "F14.xx / F15.xx",
		FullName: "Stimulant Use Disorder (Cocaine/Amphetamine)",
		Symptoms: []string{
			"tolerance",
			"withdrawal",
			"using_more_than_intended",
			"craving",
			"risky_use",
			"continued_use_despite_problems",
		},
	},
	{
		ID:       "substance_use_disorder",
		Category: CategorySubstanceUse,
		DSMCode:  "F1x.xx",
		FullName: "Substance Use Disorder (Unspecified)",
		Symptoms: []string{
			"tolerance",
			"withdrawal",
			"using_more_than_intended",
			"unsuccessful_efforts_to_cut_down",
			"time_spent_obtaining_substances",
			"craving",
			"continued_use_despite_problems",
			"failure_to_fulfill_obligations",
		},
	},

	// ----- Somáticos -----
	{
		ID:       "illness_anxiety_disorder",
		Category: CategorySomatic,
		DSMCode:  "F45.21",
		FullName: "Illness Anxiety Disorder (Hypochondriasis)",
		Symptoms: []string{
			"preoccupation_with_having_serious_illness",
			"high_health_anxiety",
			"excessive_health_related_behaviors",
			"frequent_medical_visits",
			"checking_for_signs_of_illness",
			"avoidance_of_medical_care",
		},
	},
	{
		ID:       "somatic_symptom_disorder",
		Category: CategorySomatic,
		DSMCode:  "F45.1",
		FullName: "Somatic Symptom Disorder",
		Symptoms: []string{
			"one_or_more_somatic_symptoms",
			"excessive_thoughts_about_symptoms",
			"high_anxiety_about_health",
			"excessive_time_devoted_to_symptoms",
		},
	},
	{
		ID:       "conversion_disorder",
		Category: CategorySomatic,
		DSMCode:  "F44.x",
		FullName: "Conversion Disorder (Functional Neurological Symptom Disorder)",
		Symptoms: []string{
			"altered_motor_function",
			"altered_sensory_function",
			"seizures",
			"symptoms_incompatible_with_medical_condition",
		},
	},
	{
		ID:       "factitious_disorder",
		Category: CategorySomatic,
		DSMCode:  "F68.10",
		FullName: "Factitious Disorder (Munchausen Syndrome)",
		Symptoms: []string{
			"falsification_of_symptoms",
			"deceptive_behavior",
			"presenting_self_as_ill",
			"absence_of_external_rewards",
		},
		Subtypes: []string{"imposed_on_self", "imposed_on_another"},
	},

	// ----- Alimentarios -----
	{
		ID:       "anorexia_nervosa",
		Category: CategoryEating,
		DSMCode:  "F50.0x",
		FullName: "Anorexia Nervosa",
		Symptoms: []string{
			"restriction_of_energy_intake",
			"intense_fear_of_weight_gain",
			"disturbance_in_body_image",
			"low_body_weight",
			"denial_of_seriousness",
		},
		Subtypes: []string{"restricting", "binge_eating_purging"},
	},
	{
		ID:       "bulimia_nervosa",
		Category: CategoryEating,
		DSMCode:  "F50.2",
		FullName: "Bulimia Nervosa",
		Symptoms: []string{
			"recurrent_binge_eating",
			"compensatory_behaviors",
			"self_evaluation_influenced_by_body_shape",
			"vomiting",
			"laxative_use",
			"excessive_exercise",
		},
	},
	{
		ID:       "binge_eating_disorder",
		Category: CategoryEating,
		DSMCode:  "F50.81",
		FullName: "Binge Eating Disorder",
		Symptoms: []string{
			"recurrent_binge_eating",
			"eating_rapidly",
			"eating_until_uncomfortably_full",
			"eating_when_not_hungry",
			"distress_about_binge_eating",
			"no_compensatory_behaviors",
		},
	},

	// ----- OCD y relacionados -----
	{
		ID:       "obsessive_compulsive_disorder",
		Category: CategoryOCDRelated,
		DSMCode:  "F42.x",
		FullName: "Obsessive-Compulsive Disorder",
		Symptoms: []string{
			"obsessions",
			"compulsions",
			"time_consuming_rituals",
			"distress_from_obsessions",
			"attempts_to_suppress_thoughts",
		},
		Subtypes: []string{"contamination", "symmetry", "forbidden_thoughts", "harm"},
	},
	{
		ID:       "hoarding_disorder",
		Category: CategoryOCDRelated,
		DSMCode:  "F42.3",
		FullName: "Hoarding Disorder",
		Symptoms: []string{
			"difficulty_discarding_possessions",
			"perceived_need_to_save_items",
			"distress_at_discarding",
			"accumulation_of_possessions",
			"cluttered_living_spaces",
			"impairment_in_functioning",
		},
	},
	{
		ID:       "body_dysmorphic_disorder",
		Category: CategoryOCDRelated,
		DSMCode:  "F45.22",
		FullName: "Body Dysmorphic Disorder",
		Symptoms: []string{
			"preoccupation_with_perceived_defect",
			"repetitive_behaviors",
			"mirror_checking",
			"excessive_grooming",
			"skin_picking",
			"reassurance_seeking",
		},
	},
	{
		ID:       "trichotillomania",
		Category: CategoryOCDRelated,
		DSMCode:  "F63.3",
		FullName: "Trichotillomania (Hair-Pulling Disorder)",
		Symptoms: []string{
			"recurrent_hair_pulling",
			"attempts_to_decrease_pulling",
			"distress_from_pulling",
			"noticeable_hair_loss",
		},
	},
	{
		ID:       "excoriation_disorder",
		Category: CategoryOCDRelated,
		DSMCode:  "F42.4",
		FullName: "Excoriation Disorder (Skin-Picking)",
		Symptoms: []string{
			"recurrent_skin_picking",
			"skin_lesions",
			"attempts_to_decrease_picking",
			"distress_from_picking",
		},
	},

	// ----- Sexuales -----
	{
		ID:       "hypersexuality",
		Category: CategorySexual,
		DSMCode:  "ICD-11: 6C72",
		FullName: "Compulsive Sexual Behavior Disorder",
		Symptoms: []string{
			"persistent_pattern_of_sexual_behavior",
			"unsuccessful_efforts_to_control",
			"continued_despite_consequences",
			"sexual_behavior_becomes_central_focus",
			"distress_from_behavior",
		},
	},
	{
		ID:       "paraphilic_disorders",
		Category: CategorySexual,
		DSMCode:  "F65.x",
		FullName: "Paraphilic Disorders",
		Symptoms: []string{
			"recurrent_intense_sexual_arousal",
			"acting_on_urges",
			"distress_from_urges",
			"impairment_in_functioning",
		},
		Subtypes: []string{
			"voyeuristic",
			"exhibitionistic",
			"frotteuristic",
			"sexual_masochism",
			"sexual_sadism",
			"pedophilic",
			"fetishistic",
			"transvestic",
		},
	},
	{
		ID:       "sexual_dysfunction",
		Category: CategorySexual,
		DSMCode:  "F52.x",
		FullName: "Sexual Dysfunction (Unspecified)",
		Symptoms: []string{
			"low_sexual_desire",
			"arousal_difficulty",
			"pain_during_sex",
			"anxiety_about_sex",
			"avoidance_of_sexual_activity",
		},
	},

	// ----- Psicóticos -----
	{
		ID:       "schizophrenia",
		Category: CategoryPsychotic,
		DSMCode:  "F20.x",
		FullName: "Schizophrenia",
		Symptoms: []string{
			"delusions",
			"hallucinations",
			"disorganized_speech",
			"disorganized_behavior",
			"negative_symptoms",
			"social_withdrawal",
			"flat_affect",
			"avolition",
		},
		Subtypes: []string{"paranoid", "disorganized", "catatonic", "undifferentiated", "residual"},
	},
	{
		ID:       "schizoaffective_disorder",
		Category: CategoryPsychotic,
		DSMCode:  "F25.x",
		FullName: "Schizoaffective Disorder",
		Symptoms: []string{
			"psychotic_symptoms",
			"mood_episodes",
			"delusions_or_hallucinations_for_2_weeks",
			"mood_symptoms_for_majority_of_illness",
		},
		Subtypes: []string{"bipolar_type", "depressive_type"},
	},
	{
		ID:       "delusional_disorder",
		Category: CategoryPsychotic,
		DSMCode:  "F22",
		FullName: "Delusional Disorder",
		Symptoms: []string{
			"non_bizarre_delusions",
			"functioning_not_markedly_impaired",
			"behavior_not_obviously_bizarre",
		},
		Subtypes: []string{"erotomanic", "grandiose", "jealous", "persecutory", "somatic"},
	},

	// ----- Neurodesarrollo -----
	{
		ID:       "adhd",
		Category: CategoryNeurodevelopmental,
		DSMCode:  "F90.x",
		FullName: "Attention-Deficit/Hyperactivity Disorder",
		Symptoms: []string{
			"inattention",
			"hyperactivity",
			"impulsivity",
			"difficulty_sustaining_attention",
			"easily_distracted",
			"forgetfulness",
			"fidgeting",
			"inability_to_stay_seated",
			"interrupting_others",
		},
		Subtypes: []string{"predominantly_inattentive", "predominantly_hyperactive", "combined"},
	},
	{
		ID:       "autism_spectrum_disorder",
		Category: CategoryNeurodevelopmental,
		DSMCode:  "F84.0",
		FullName: "Autism Spectrum Disorder",
		Symptoms: []string{
			"social_communication_deficits",
			"restricted_interests",
			"repetitive_behaviors",
			"sensory_sensitivities",
			"difficulty_with_social_reciprocity",
		},
	},
}
