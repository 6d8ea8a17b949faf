package scoring

import (
	"testing"

	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/matcher"
	"github.com/triagekit/triagetree/internal/priority"
	"github.com/triagekit/triagetree/internal/question"
)

func testAggregator(t *testing.T, entries ...lexicon.Entry) *Aggregator {
	t.Helper()
	lex, err := lexicon.New(entries)
	if err != nil {
		t.Fatal(err)
	}
	return NewAggregator(matcher.New(lex, matcher.DefaultConfig()))
}

func entry(kw string, tier priority.Tier, sub priority.SubCategory, w float64) lexicon.Entry {
	return lexicon.Entry{Keyword: kw, Tier: tier, SubCategory: sub, Weight: w}
}

func mustQuestion(t *testing.T, stem string, options map[string]string) *question.Question {
	t.Helper()
	q, err := question.New("q", stem, options, question.FormatSingle)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestTierSelectionBeforeSummation(t *testing.T) {
	agg := testAggregator(t,
		entry("compressions", priority.TierLifeThreat, priority.SubCirculation, 1.0),
		entry("assess", priority.TierNursingProcess, priority.SubAssessment, 1.5),
		entry("monitor", priority.TierNursingProcess, priority.SubAssessment, 1.5),
		entry("document", priority.TierNursingProcess, priority.SubEvaluation, 1.5),
	)

	q := mustQuestion(t, "Which action should the nurse take?", map[string]string{
		"A": "Assess, monitor, and document the response",
		"B": "Start compressions",
	})

	scores := agg.Score(q)

	a, b := scores["A"], scores["B"]
	if a.Tier != priority.TierNursingProcess {
		t.Errorf("A: got tier %s", a.Tier)
	}
	if b.Tier != priority.TierLifeThreat {
		t.Errorf("B: got tier %s", b.Tier)
	}
	// A's summed score is numerically higher, but B's tier must dominate
	// in ranking regardless.
	if a.Score <= b.Score {
		t.Fatalf("test premise broken: A=%.2f should exceed B=%.2f numerically", a.Score, b.Score)
	}
	ranked := Rank(scores)
	if ranked[0] != "B" {
		t.Errorf("ranked %v: a weak life-threat must beat a pile of process matches", ranked)
	}
}

func TestOnlySelectedTierContributes(t *testing.T) {
	agg := testAggregator(t,
		entry("oxygen", priority.TierLifeThreat, priority.SubBreathing, 1.5),
		entry("administer", priority.TierNursingProcess, priority.SubImplementation, 1.0),
	)

	q := mustQuestion(t, "Which action?", map[string]string{
		"A": "Administer oxygen",
	})
	s := agg.Score(q)["A"]

	if s.Tier != priority.TierLifeThreat {
		t.Fatalf("got tier %s", s.Tier)
	}
	if s.Score != 1.5 {
		t.Errorf("got score %.2f, want 1.5 (lower-tier match must not add)", s.Score)
	}
	if len(s.Contributing) != 1 || len(s.Discarded) != 1 {
		t.Errorf("got %d contributing, %d discarded", len(s.Contributing), len(s.Discarded))
	}
}

func TestSuppressedMatchScoresZero(t *testing.T) {
	agg := testAggregator(t,
		entry("pain", priority.TierPhysicalNeed, priority.SubPain, 1.5),
	)

	q := mustQuestion(t, "Which client?", map[string]string{
		"A": "The client who denies pain",
	})
	s := agg.Score(q)["A"]

	if s.Score != 0 {
		t.Errorf("got score %.2f, want 0 for a negated match", s.Score)
	}
	if s.Tier != priority.TierNone {
		t.Errorf("got tier %s, want none", s.Tier)
	}
	if len(s.Discarded) != 1 {
		t.Errorf("suppressed match should be recorded as discarded")
	}
}

func TestStemEmphasisBoost(t *testing.T) {
	agg := testAggregator(t,
		entry("oxygen", priority.TierLifeThreat, priority.SubBreathing, 1.5),
	)

	plain := mustQuestion(t, "Which action should the nurse take?", map[string]string{"A": "Give oxygen"})
	boosted := mustQuestion(t, "Which action should the nurse take first?", map[string]string{"A": "Give oxygen"})

	ps := agg.Score(plain)["A"]
	bs := agg.Score(boosted)["A"]

	if ps.Boost != 1.0 || ps.Score != 1.5 {
		t.Errorf("plain: boost=%.2f score=%.2f", ps.Boost, ps.Score)
	}
	if bs.Boost != 1.5 || bs.Score != 2.25 {
		t.Errorf("boosted: boost=%.2f score=%.2f, want 1.5 and 2.25", bs.Boost, bs.Score)
	}
}

func TestIncludeStem(t *testing.T) {
	agg := testAggregator(t,
		entry("seizure", priority.TierLifeThreat, priority.SubDisability, 2.0),
	)

	q := mustQuestion(t, "A client with a seizure disorder calls for help.", map[string]string{
		"A": "Raise the side rails",
	})

	if s := agg.Score(q)["A"]; s.Score != 0 {
		t.Errorf("stem off: got score %.2f, want 0", s.Score)
	}

	agg.IncludeStem = true
	if s := agg.Score(q)["A"]; s.Score != 2.0 {
		t.Errorf("stem on: got score %.2f, want 2.0", s.Score)
	}
}

func TestSelectSubUrgency(t *testing.T) {
	agg := testAggregator(t,
		entry("glucose", priority.TierPhysicalNeed, priority.SubGlucose, 1.0),
		entry("diet", priority.TierPhysicalNeed, priority.SubNutrition, 2.0),
	)

	q := mustQuestion(t, "Which need?", map[string]string{
		"A": "Review the diet and glucose levels",
	})
	s := agg.Score(q)["A"]

	// Nutrition is heavier, but glucose is the more urgent need.
	if s.SubCategory != priority.SubGlucose {
		t.Errorf("got sub %s, want glucose", s.SubCategory)
	}
}

func TestSelectSubAssessmentPromoted(t *testing.T) {
	agg := testAggregator(t,
		entry("check", priority.TierNursingProcess, priority.SubAssessment, 1.0),
		entry("document", priority.TierNursingProcess, priority.SubEvaluation, 2.0),
	)

	q := mustQuestion(t, "Which step?", map[string]string{
		"A": "Check and document the output",
	})
	s := agg.Score(q)["A"]

	if s.SubCategory != priority.SubAssessment {
		t.Errorf("got sub %s, want assessment", s.SubCategory)
	}
}

func TestNoMatchesScoresZero(t *testing.T) {
	agg := testAggregator(t,
		entry("airway", priority.TierLifeThreat, priority.SubAirway, 2.0),
	)
	q := mustQuestion(t, "Which action?", map[string]string{"A": "Call the family"})
	s := agg.Score(q)["A"]

	if s.Score != 0 || s.Tier != priority.TierNone || s.SubCategory != priority.SubNone {
		t.Errorf("got score=%.2f tier=%q sub=%q", s.Score, s.Tier, s.SubCategory)
	}
}
