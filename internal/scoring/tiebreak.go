package scoring

import (
	"sort"

	"github.com/triagekit/triagetree/internal/priority"
)

// TieBreak names the rule that separated two otherwise-equal options.
type TieBreak string

const (
	TieBreakNone       TieBreak = ""
	TieBreakAssessment TieBreak = "assessment-wins"
	TieBreakLabel      TieBreak = "lexical-label"
)

// Rank orders option labels best-first. Tier dominance comes before raw
// score: an option whose selected tier outranks another's is always ranked
// above it, whatever the numeric scores say. Within a tier the order is
// descending score, then physical-need urgency, then the assessment
// tie-winner, then lexically-first label. There is no randomness anywhere:
// the same scores always produce the same ordering.
func Rank(scores map[string]OptionScore) []string {
	labels := make([]string, 0, len(scores))
	for l := range scores {
		labels = append(labels, l)
	}

	sort.Slice(labels, func(i, j int) bool {
		a, b := scores[labels[i]], scores[labels[j]]

		if a.Tier != b.Tier {
			return a.Tier.Rank() < b.Tier.Rank()
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Tier == priority.TierPhysicalNeed {
			ua, ub := priority.UrgencyOf(a.SubCategory), priority.UrgencyOf(b.SubCategory)
			if ua != ub {
				return ua < ub
			}
		}
		aw, bw := priority.IsTieWinner(a.SubCategory), priority.IsTieWinner(b.SubCategory)
		if aw != bw {
			return aw
		}
		return labels[i] < labels[j]
	})

	return labels
}

// TieBreakUsed reports which rule decided between the top two ranked
// options, for the decision trace. Returns TieBreakNone when tier or score
// already separated them.
func TieBreakUsed(scores map[string]OptionScore, ranked []string) TieBreak {
	if len(ranked) < 2 {
		return TieBreakNone
	}
	a, b := scores[ranked[0]], scores[ranked[1]]
	if a.Tier != b.Tier || a.Score != b.Score {
		return TieBreakNone
	}
	if a.Tier == priority.TierPhysicalNeed &&
		priority.UrgencyOf(a.SubCategory) != priority.UrgencyOf(b.SubCategory) {
		return TieBreakNone
	}
	if priority.IsTieWinner(a.SubCategory) && !priority.IsTieWinner(b.SubCategory) {
		return TieBreakAssessment
	}
	return TieBreakLabel
}
