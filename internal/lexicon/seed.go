package lexicon

import "github.com/triagekit/triagetree/internal/priority"

// seedEntries is the built-in keyword table, organized by tier. Weights
// express relative signal strength within a tier only; tier selection
// happens before summation, so a weight here never lets a lower tier
// outscore a higher one.
var seedEntries = []Entry{
	// Life threats: Airway.
	{Keyword: "airway", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 2.0},
	{Keyword: "choking", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 2.0},
	{Keyword: "stridor", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 2.0},
	{Keyword: "obstruction", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 1.5},
	{Keyword: "suction", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 1.0},
	{Keyword: "intubation", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 1.5},

	// Life threats: Breathing.
	{Keyword: "breathing", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 1.5},
	{Keyword: "oxygen", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 1.5},
	{Keyword: "respiratory", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 1.5},
	{Keyword: "dyspnea", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 2.0},
	{Keyword: "wheezing", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 1.5},
	{Keyword: "cyanosis", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 2.0},
	{Keyword: "apnea", Tier: priority.TierLifeThreat, SubCategory: priority.SubBreathing, Weight: 2.0},

	// Life threats: Circulation.
	{Keyword: "circulation", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 1.5},
	{Keyword: "pulse", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 1.5},
	{Keyword: "bleeding", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.0},
	{Keyword: "hemorrhage", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.0},
	{Keyword: "cardiac arrest", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.5},
	{Keyword: "compressions", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.5},
	{Keyword: "cpr", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.5},
	{Keyword: "shock", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.0},
	{Keyword: "defibrillator", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.0},

	// Life threats: Disability.
	{Keyword: "unresponsive", Tier: priority.TierLifeThreat, SubCategory: priority.SubDisability, Weight: 2.0},
	{Keyword: "level of consciousness", Tier: priority.TierLifeThreat, SubCategory: priority.SubDisability, Weight: 2.0},
	{Keyword: "seizure", Tier: priority.TierLifeThreat, SubCategory: priority.SubDisability, Weight: 2.0},
	{Keyword: "pupils", Tier: priority.TierLifeThreat, SubCategory: priority.SubDisability, Weight: 1.0},
	{Keyword: "paralysis", Tier: priority.TierLifeThreat, SubCategory: priority.SubDisability, Weight: 1.5},
	{Keyword: "neuro", Tier: priority.TierLifeThreat, SubCategory: priority.SubDisability, Weight: 1.0},

	// Safety: Falls.
	{Keyword: "fall", Tier: priority.TierSafety, SubCategory: priority.SubFalls, Weight: 1.5},
	{Keyword: "bed rail", Tier: priority.TierSafety, SubCategory: priority.SubFalls, Weight: 1.5},
	{Keyword: "call bell", Tier: priority.TierSafety, SubCategory: priority.SubFalls, Weight: 1.0},
	{Keyword: "bed in lowest position", Tier: priority.TierSafety, SubCategory: priority.SubFalls, Weight: 1.5},
	{Keyword: "non-slip", Tier: priority.TierSafety, SubCategory: priority.SubFalls, Weight: 1.0},

	// Safety: Infection.
	{Keyword: "infection", Tier: priority.TierSafety, SubCategory: priority.SubInfection, Weight: 1.5},
	{Keyword: "isolation", Tier: priority.TierSafety, SubCategory: priority.SubInfection, Weight: 1.5},
	{Keyword: "ppe", Tier: priority.TierSafety, SubCategory: priority.SubInfection, Weight: 1.5},
	{Keyword: "hand hygiene", Tier: priority.TierSafety, SubCategory: priority.SubInfection, Weight: 1.5},
	{Keyword: "sterile", Tier: priority.TierSafety, SubCategory: priority.SubInfection, Weight: 1.0},

	// Safety: Violence.
	{Keyword: "restraint", Tier: priority.TierSafety, SubCategory: priority.SubViolence, Weight: 1.5},
	{Keyword: "one-to-one", Tier: priority.TierSafety, SubCategory: priority.SubViolence, Weight: 1.5},
	{Keyword: "suicide", Tier: priority.TierSafety, SubCategory: priority.SubViolence, Weight: 2.0},
	{Keyword: "remove hazards", Tier: priority.TierSafety, SubCategory: priority.SubViolence, Weight: 1.0},

	// Physical needs: Glucose.
	{Keyword: "glucose", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubGlucose, Weight: 1.5},
	{Keyword: "hypoglycemia", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubGlucose, Weight: 2.0},
	{Keyword: "insulin", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubGlucose, Weight: 1.0},
	{Keyword: "carbohydrates", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubGlucose, Weight: 1.5},
	{Keyword: "blood sugar", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubGlucose, Weight: 1.5},

	// Physical needs: Elimination.
	{Keyword: "urinary retention", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubElimination, Weight: 2.0},
	{Keyword: "catheter", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubElimination, Weight: 1.5},
	{Keyword: "void", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubElimination, Weight: 1.0},
	{Keyword: "bowel", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubElimination, Weight: 1.0},

	// Physical needs: Pain.
	{Keyword: "pain", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubPain, Weight: 1.5},
	{Keyword: "analgesic", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubPain, Weight: 1.5},
	{Keyword: "morphine", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubPain, Weight: 1.0},
	{Keyword: "discomfort", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubPain, Weight: 1.0},

	// Physical needs: Nutrition.
	{Keyword: "nutrition", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubNutrition, Weight: 1.5},
	{Keyword: "malnutrition", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubNutrition, Weight: 1.5},
	{Keyword: "supplements", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubNutrition, Weight: 1.0},
	{Keyword: "diet", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubNutrition, Weight: 1.0},

	// Nursing process: Assessment.
	{Keyword: "assess", Tier: priority.TierNursingProcess, SubCategory: priority.SubAssessment, Weight: 1.5},
	{Keyword: "check", Tier: priority.TierNursingProcess, SubCategory: priority.SubAssessment, Weight: 1.0},
	{Keyword: "monitor", Tier: priority.TierNursingProcess, SubCategory: priority.SubAssessment, Weight: 1.0},
	{Keyword: "vital signs", Tier: priority.TierNursingProcess, SubCategory: priority.SubAssessment, Weight: 1.5},
	{Keyword: "observe", Tier: priority.TierNursingProcess, SubCategory: priority.SubAssessment, Weight: 1.0},
	{Keyword: "auscultate", Tier: priority.TierNursingProcess, SubCategory: priority.SubAssessment, Weight: 1.5},

	// Nursing process: Diagnosis.
	{Keyword: "nursing diagnosis", Tier: priority.TierNursingProcess, SubCategory: priority.SubDiagnosis, Weight: 1.5},

	// Nursing process: Planning.
	{Keyword: "care plan", Tier: priority.TierNursingProcess, SubCategory: priority.SubPlanning, Weight: 1.5},
	{Keyword: "plan", Tier: priority.TierNursingProcess, SubCategory: priority.SubPlanning, Weight: 1.0},
	{Keyword: "goal", Tier: priority.TierNursingProcess, SubCategory: priority.SubPlanning, Weight: 1.0},

	// Nursing process: Implementation.
	{Keyword: "administer", Tier: priority.TierNursingProcess, SubCategory: priority.SubImplementation, Weight: 1.0},
	{Keyword: "perform", Tier: priority.TierNursingProcess, SubCategory: priority.SubImplementation, Weight: 1.0},
	{Keyword: "provide", Tier: priority.TierNursingProcess, SubCategory: priority.SubImplementation, Weight: 1.0},
	{Keyword: "teach", Tier: priority.TierNursingProcess, SubCategory: priority.SubImplementation, Weight: 1.0},

	// Nursing process: Evaluation.
	{Keyword: "evaluate", Tier: priority.TierNursingProcess, SubCategory: priority.SubEvaluation, Weight: 1.0},
	{Keyword: "reassess", Tier: priority.TierNursingProcess, SubCategory: priority.SubEvaluation, Weight: 1.0},
	{Keyword: "follow-up", Tier: priority.TierNursingProcess, SubCategory: priority.SubEvaluation, Weight: 1.0},
	{Keyword: "document", Tier: priority.TierNursingProcess, SubCategory: priority.SubEvaluation, Weight: 1.0},
}
