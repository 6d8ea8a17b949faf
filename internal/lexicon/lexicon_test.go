package lexicon

import (
	"errors"
	"testing"

	"github.com/triagekit/triagetree/internal/priority"
)

func TestEntryValidate(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		valid bool
	}{
		{
			name:  "valid entry",
			entry: Entry{Keyword: "airway", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 2.0},
			valid: true,
		},
		{
			name:  "empty keyword",
			entry: Entry{Keyword: "  ", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 1.0},
		},
		{
			name:  "zero weight",
			entry: Entry{Keyword: "airway", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 0},
		},
		{
			name:  "negative weight",
			entry: Entry{Keyword: "airway", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: -1},
		},
		{
			name:  "unknown tier",
			entry: Entry{Keyword: "airway", Tier: "urgent", SubCategory: priority.SubAirway, Weight: 1.0},
		},
		{
			name:  "sub-category outside tier",
			entry: Entry{Keyword: "airway", Tier: priority.TierSafety, SubCategory: priority.SubAirway, Weight: 1.0},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.entry.Validate()
			if c.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.valid {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigurationError, got %v", err)
				}
			}
		})
	}
}

func TestEntryKey(t *testing.T) {
	e := Entry{Keyword: "Cardiac Arrest", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.5}
	if got := e.Key(); got != "circulation:cardiac arrest" {
		t.Errorf("got key %q", got)
	}
}

func TestNewRejectsInvalidEntry(t *testing.T) {
	_, err := New([]Entry{
		{Keyword: "airway", Tier: priority.TierLifeThreat, SubCategory: priority.SubAirway, Weight: 1.0},
		{Keyword: "bad", Tier: "bogus", SubCategory: priority.SubAirway, Weight: 1.0},
	})
	if err == nil {
		t.Fatal("expected error for invalid entry")
	}
}

func TestDefaultSeedIsValid(t *testing.T) {
	lex := Default()
	if lex.Len() == 0 {
		t.Fatal("seed lexicon is empty")
	}
	covered := make(map[priority.Tier]bool)
	for _, e := range lex.AllEntries() {
		covered[e.Tier] = true
	}
	for _, tier := range priority.AllTiers() {
		if !covered[tier] {
			t.Errorf("seed has no entries for tier %s", tier)
		}
	}
}

type fixedMultiplier float64

func (f fixedMultiplier) MultiplierFor(string) float64 { return float64(f) }

func TestWeightOfAppliesMultiplier(t *testing.T) {
	e := Entry{Keyword: "cpr", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.0}
	lex, err := New([]Entry{e})
	if err != nil {
		t.Fatal(err)
	}

	if got := lex.WeightOf(e); got != 2.0 {
		t.Errorf("without source: got %f, want 2.0", got)
	}

	lex.SetMultiplierSource(fixedMultiplier(1.5))
	if got := lex.WeightOf(e); got != 3.0 {
		t.Errorf("with source: got %f, want 3.0", got)
	}
}

func TestAddValidatesBeforeAppending(t *testing.T) {
	lex, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	err = lex.Add(Entry{Keyword: "pain", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubPain, Weight: 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lex.Len() != 1 {
		t.Fatalf("got %d entries, want 1", lex.Len())
	}

	err = lex.Add(Entry{Keyword: "", Tier: priority.TierPhysicalNeed, SubCategory: priority.SubPain, Weight: 1.0})
	if err == nil {
		t.Fatal("expected error for empty keyword")
	}
}
