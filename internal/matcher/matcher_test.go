package matcher

import (
	"testing"

	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/priority"
)

func testLexicon(t *testing.T, entries ...lexicon.Entry) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.New(entries)
	if err != nil {
		t.Fatal(err)
	}
	return lex
}

func entry(kw string, tier priority.Tier, sub priority.SubCategory, w float64) lexicon.Entry {
	return lexicon.Entry{Keyword: kw, Tier: tier, SubCategory: sub, Weight: w}
}

func TestMatchCaseInsensitive(t *testing.T) {
	lex := testLexicon(t, entry("airway", priority.TierLifeThreat, priority.SubAirway, 2.0))
	m := New(lex, DefaultConfig())

	matches := m.Match("Assess the AIRWAY immediately")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Text != "AIRWAY" {
		t.Errorf("got text %q", matches[0].Text)
	}
	if matches[0].Tier != priority.TierLifeThreat {
		t.Errorf("got tier %s", matches[0].Tier)
	}
}

func TestMatchWordBoundary(t *testing.T) {
	lex := testLexicon(t, entry("assess", priority.TierNursingProcess, priority.SubAssessment, 1.5))
	m := New(lex, DefaultConfig())

	if got := m.Match("reassess the client"); len(got) != 0 {
		t.Errorf("'assess' must not match inside 'reassess', got %d matches", len(got))
	}
	if got := m.Match("assess the client"); len(got) != 1 {
		t.Errorf("expected a whole-word match, got %d", len(got))
	}
}

func TestMatchMultiWordPhrase(t *testing.T) {
	lex := testLexicon(t, entry("cardiac arrest", priority.TierLifeThreat, priority.SubCirculation, 2.5))
	m := New(lex, DefaultConfig())

	matches := m.Match("The client is in cardiac arrest.")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Text != "cardiac arrest" {
		t.Errorf("got text %q", matches[0].Text)
	}
}

func TestMatchLongestWins(t *testing.T) {
	lex := testLexicon(t,
		entry("cardiac arrest", priority.TierLifeThreat, priority.SubCirculation, 2.5),
		entry("cardiac", priority.TierLifeThreat, priority.SubCirculation, 1.0),
	)
	m := New(lex, DefaultConfig())

	matches := m.Match("witnessed cardiac arrest")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Entry.Keyword != "cardiac arrest" {
		t.Errorf("got keyword %q, want the longer phrase", matches[0].Entry.Keyword)
	}
}

func TestMatchHighestWeightBreaksLengthTie(t *testing.T) {
	lex := testLexicon(t,
		entry("monitor", priority.TierNursingProcess, priority.SubAssessment, 1.0),
		entry("monitor", priority.TierNursingProcess, priority.SubEvaluation, 1.5),
	)
	m := New(lex, DefaultConfig())

	matches := m.Match("monitor the output")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].SubCategory != priority.SubEvaluation {
		t.Errorf("got sub %s, want the heavier entry", matches[0].SubCategory)
	}
}

func TestMatchTextOrder(t *testing.T) {
	lex := testLexicon(t,
		entry("pain", priority.TierPhysicalNeed, priority.SubPain, 1.5),
		entry("airway", priority.TierLifeThreat, priority.SubAirway, 2.0),
	)
	m := New(lex, DefaultConfig())

	matches := m.Match("pain relief after securing the airway")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Entry.Keyword != "pain" || matches[1].Entry.Keyword != "airway" {
		t.Errorf("matches not in text order: %q then %q",
			matches[0].Entry.Keyword, matches[1].Entry.Keyword)
	}
}

func TestNegationSuppression(t *testing.T) {
	lex := testLexicon(t,
		entry("pain", priority.TierPhysicalNeed, priority.SubPain, 1.5),
		entry("pulse", priority.TierLifeThreat, priority.SubCirculation, 1.5),
	)
	m := New(lex, DefaultConfig())

	cases := []struct {
		text       string
		suppressed bool
	}{
		{"the client denies pain", true},
		{"no pulse detected", true},
		{"client is without pain", true},
		{"reports severe pain", false},
		// Cue farther back than the window.
		{"no redness noted but client reports severe pain", false},
	}

	for _, c := range cases {
		matches := m.Match(c.text)
		if len(matches) != 1 {
			t.Fatalf("%q: got %d matches, want 1", c.text, len(matches))
		}
		if matches[0].Suppressed != c.suppressed {
			t.Errorf("%q: suppressed=%v, want %v", c.text, matches[0].Suppressed, c.suppressed)
		}
	}
}

func TestNegationWindowConfigurable(t *testing.T) {
	lex := testLexicon(t, entry("pain", priority.TierPhysicalNeed, priority.SubPain, 1.5))
	cfg := DefaultConfig()
	cfg.NegationWindow = 1
	m := New(lex, cfg)

	matches := m.Match("denies any pain")
	if len(matches) != 1 {
		t.Fatal("expected one match")
	}
	if matches[0].Suppressed {
		t.Error("cue two tokens back should be outside a window of 1")
	}
}

func TestEmphasisBoost(t *testing.T) {
	lex := testLexicon(t, entry("pain", priority.TierPhysicalNeed, priority.SubPain, 1.5))
	m := New(lex, DefaultConfig())

	cases := []struct {
		stem string
		want float64
	}{
		{"Which action is the priority?", 1.5},
		{"What should the nurse do FIRST?", 1.5},
		{"Which is the most important intervention?", 1.5},
		{"Which statement indicates understanding?", 1.0},
		// "prioritize" must not trigger the whole-word cue "priority".
		{"How should the nurse prioritize care?", 1.0},
	}

	for _, c := range cases {
		if got := m.EmphasisBoost(c.stem); got != c.want {
			t.Errorf("%q: got boost %f, want %f", c.stem, got, c.want)
		}
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	lex := testLexicon(t, entry("pain", priority.TierPhysicalNeed, priority.SubPain, 1.5))
	m := New(lex, DefaultConfig())

	if got := m.Match(""); len(got) != 0 {
		t.Errorf("empty text: got %d matches", len(got))
	}
	if got := m.Match("!!! ... ???"); len(got) != 0 {
		t.Errorf("punctuation only: got %d matches", len(got))
	}

	empty := testLexicon(t)
	if got := New(empty, DefaultConfig()).Match("severe pain"); len(got) != 0 {
		t.Errorf("empty lexicon: got %d matches", len(got))
	}
}
