package priority

// Tier is one of the four ranked priority categories. Lower Rank values
// outrank higher ones: LifeThreat beats Safety beats PhysicalNeed beats
// NursingProcess, regardless of how many keywords matched.
type Tier string

const (
	TierLifeThreat     Tier = "life-threat"
	TierSafety         Tier = "safety"
	TierPhysicalNeed   Tier = "physical-need"
	TierNursingProcess Tier = "nursing-process"

	// TierNone marks an option with no lexicon matches at all.
	TierNone Tier = ""
)

// AllTiers returns the tiers in priority order, highest first.
func AllTiers() []Tier {
	return []Tier{
		TierLifeThreat,
		TierSafety,
		TierPhysicalNeed,
		TierNursingProcess,
	}
}

// Rank returns the tier's position in the priority order (0 = highest).
// TierNone ranks below everything.
func (t Tier) Rank() int {
	switch t {
	case TierLifeThreat:
		return 0
	case TierSafety:
		return 1
	case TierPhysicalNeed:
		return 2
	case TierNursingProcess:
		return 3
	default:
		return 4
	}
}

// Outranks reports whether t is a strictly higher priority than other.
func (t Tier) Outranks(other Tier) bool {
	return t.Rank() < other.Rank()
}

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	return t.Rank() < 4
}

// DisplayName returns a human-readable name for a tier.
func DisplayName(t Tier) string {
	switch t {
	case TierLifeThreat:
		return "Life Threats (ABC+D)"
	case TierSafety:
		return "Safety"
	case TierPhysicalNeed:
		return "Physical Needs"
	case TierNursingProcess:
		return "Nursing Process (ADPIE)"
	default:
		return "No match"
	}
}

// SubCategory refines a tier: ABC+D for life threats, hazard classes for
// safety, need classes for physical needs, and ADPIE phases for the
// nursing process.
type SubCategory string

const (
	// Life threats.
	SubAirway      SubCategory = "airway"
	SubBreathing   SubCategory = "breathing"
	SubCirculation SubCategory = "circulation"
	SubDisability  SubCategory = "disability"

	// Safety.
	SubFalls     SubCategory = "falls"
	SubInfection SubCategory = "infection"
	SubViolence  SubCategory = "violence"

	// Physical needs.
	SubGlucose     SubCategory = "glucose"
	SubElimination SubCategory = "elimination"
	SubPain        SubCategory = "pain"
	SubNutrition   SubCategory = "nutrition"

	// Nursing process.
	SubAssessment     SubCategory = "assessment"
	SubDiagnosis      SubCategory = "diagnosis"
	SubPlanning       SubCategory = "planning"
	SubImplementation SubCategory = "implementation"
	SubEvaluation     SubCategory = "evaluation"

	// SubNone marks a match with no sub-category, or no match.
	SubNone SubCategory = ""
)

// tierOf maps every sub-category to its tier.
var tierOf = map[SubCategory]Tier{
	SubAirway:      TierLifeThreat,
	SubBreathing:   TierLifeThreat,
	SubCirculation: TierLifeThreat,
	SubDisability:  TierLifeThreat,

	SubFalls:     TierSafety,
	SubInfection: TierSafety,
	SubViolence:  TierSafety,

	SubGlucose:     TierPhysicalNeed,
	SubElimination: TierPhysicalNeed,
	SubPain:        TierPhysicalNeed,
	SubNutrition:   TierPhysicalNeed,

	SubAssessment:     TierNursingProcess,
	SubDiagnosis:      TierNursingProcess,
	SubPlanning:       TierNursingProcess,
	SubImplementation: TierNursingProcess,
	SubEvaluation:     TierNursingProcess,
}

// TierOf returns the tier a sub-category belongs to, or TierNone if the
// sub-category is unknown.
func TierOf(sub SubCategory) Tier {
	return tierOf[sub]
}

// BelongsTo reports whether sub is a valid sub-category of tier.
func BelongsTo(sub SubCategory, tier Tier) bool {
	return tierOf[sub] == tier
}

// Urgency orders physical needs by how fast they become dangerous.
// Glucose is a minutes-scale problem, elimination and pain are hours-scale,
// nutrition is days-scale. Lower values are more urgent.
type Urgency int

const (
	UrgencyMinutes Urgency = iota
	UrgencyHours
	UrgencyDays
	UrgencyUnranked
)

// UrgencyOf returns the urgency class for a physical-need sub-category.
// Sub-categories outside the physical-need tier are unranked; their tiers
// already establish a total order.
func UrgencyOf(sub SubCategory) Urgency {
	switch sub {
	case SubGlucose:
		return UrgencyMinutes
	case SubElimination, SubPain:
		return UrgencyHours
	case SubNutrition:
		return UrgencyDays
	default:
		return UrgencyUnranked
	}
}

// IsTieWinner reports whether a sub-category wins score ties outright.
// Assessment is the designated tie-winner: "assess before you intervene".
func IsTieWinner(sub SubCategory) bool {
	return sub == SubAssessment
}
