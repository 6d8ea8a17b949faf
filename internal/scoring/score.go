package scoring

import (
	"github.com/triagekit/triagetree/internal/matcher"
	"github.com/triagekit/triagetree/internal/priority"
	"github.com/triagekit/triagetree/internal/question"
)

// OptionScore is the scored result for one option. Recomputed per
// prediction, never persisted.
type OptionScore struct {
	Label       string
	Tier        priority.Tier        // highest tier among the option's matches, or TierNone
	SubCategory priority.SubCategory // representative sub-category within that tier
	Score       float64

	// Contributing are the matches in the selected tier, in text order.
	// Only these add to Score.
	Contributing []matcher.Match

	// Discarded are suppressed matches and matches from lower tiers.
	// Recorded for the decision trace only.
	Discarded []matcher.Match

	// Boost is the stem emphasis multiplier applied to Score (1.0 when
	// the stem has no emphasis cue).
	Boost float64
}

// Aggregator turns a question into per-option scores using the
// tier-then-sum policy: pick the single highest-priority tier among an
// option's matches, then sum only that tier's weights. A lone life-threat
// keyword therefore always outscores any pile of lower-tier matches;
// cross-tier sums are never formed.
type Aggregator struct {
	matcher *matcher.Matcher

	// IncludeStem appends the stem to each option's text before matching.
	// Off by default: stem keywords hit every option equally and mostly
	// add noise.
	IncludeStem bool
}

// NewAggregator creates an aggregator over the given matcher.
func NewAggregator(m *matcher.Matcher) *Aggregator {
	return &Aggregator{matcher: m}
}

// Score computes an OptionScore for every option of q. An option with no
// matches gets score 0 and TierNone.
func (a *Aggregator) Score(q *question.Question) map[string]OptionScore {
	boost := a.matcher.EmphasisBoost(q.Stem)

	scores := make(map[string]OptionScore, len(q.Options))
	for label, text := range q.Options {
		if a.IncludeStem {
			text = text + " " + q.Stem
		}
		scores[label] = a.scoreOption(label, text, boost)
	}
	return scores
}

func (a *Aggregator) scoreOption(label, text string, boost float64) OptionScore {
	matches := a.matcher.Match(text)

	os := OptionScore{Label: label, Tier: priority.TierNone, Boost: boost}
	if len(matches) == 0 {
		return os
	}

	// Select the highest tier among unsuppressed matches.
	best := priority.TierNone
	for _, m := range matches {
		if m.Suppressed {
			continue
		}
		if best == priority.TierNone || m.Tier.Outranks(best) {
			best = m.Tier
		}
	}
	os.Tier = best

	for _, m := range matches {
		if m.Suppressed || m.Tier != best {
			os.Discarded = append(os.Discarded, m)
			continue
		}
		os.Contributing = append(os.Contributing, m)
		os.Score += m.Weight * boost
	}

	os.SubCategory = selectSub(best, os.Contributing)
	return os
}

// selectSub picks the representative sub-category among same-tier matches.
// Physical needs use the urgency ordering (glucose beats elimination/pain
// beats nutrition); the nursing process promotes assessment when present,
// since assessment is the designated tie-winner; other tiers take the
// heaviest match.
func selectSub(tier priority.Tier, contributing []matcher.Match) priority.SubCategory {
	if len(contributing) == 0 {
		return priority.SubNone
	}

	switch tier {
	case priority.TierPhysicalNeed:
		best := contributing[0].SubCategory
		for _, m := range contributing[1:] {
			if priority.UrgencyOf(m.SubCategory) < priority.UrgencyOf(best) {
				best = m.SubCategory
			}
		}
		return best

	case priority.TierNursingProcess:
		for _, m := range contributing {
			if priority.IsTieWinner(m.SubCategory) {
				return m.SubCategory
			}
		}
	}

	best := contributing[0]
	for _, m := range contributing[1:] {
		if m.Weight > best.Weight {
			best = m
		}
	}
	return best.SubCategory
}
