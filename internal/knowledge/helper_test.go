package knowledge

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/triagekit/triagetree/internal/llm"
	"github.com/triagekit/triagetree/internal/priority"
)

const cannedResponse = `{
	"candidates": [
		{"keyword": "epinephrine", "tier": "life-threat", "sub_category": "circulation", "weight": 2.0, "rationale": "emergency cardiac drug"},
		{"keyword": "handrail", "tier": "safety", "sub_category": "falls", "weight": 1.0, "rationale": "fall prevention equipment"},
		{"keyword": "lavender", "tier": "none", "sub_category": "none", "weight": 0.5, "rationale": "no priority signal"}
	]
}`

func TestEnrichParsesCandidates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedResponse)},
	)
	h := New(mock, DefaultConfig())

	cands, err := h.Enrich(context.Background(), []string{"epinephrine", "handrail", "lavender"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 3 {
		t.Fatalf("got %d candidates, want 3", len(cands))
	}

	byKeyword := make(map[string]Candidate)
	for _, c := range cands {
		byKeyword[c.Keyword] = c
	}

	epi := byKeyword["epinephrine"]
	if epi.Tier != priority.TierLifeThreat || epi.SubCategory != priority.SubCirculation {
		t.Errorf("epinephrine: got %s/%s", epi.Tier, epi.SubCategory)
	}
	if lav := byKeyword["lavender"]; lav.Tier != priority.TierNone {
		t.Errorf("lavender: got tier %s, want none", lav.Tier)
	}

	if mock.CallCount() != 1 {
		t.Errorf("got %d provider calls, want 1", mock.CallCount())
	}
	// Requests carry bare terms only, never question text.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "lexicon-candidates" {
		t.Error("request must carry the candidate schema")
	}
}

func TestEnrichCachesClassifications(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedResponse)},
	)
	h := New(mock, DefaultConfig())

	if _, err := h.Enrich(context.Background(), []string{"epinephrine", "handrail", "lavender"}); err != nil {
		t.Fatal(err)
	}
	// A repeat query is served from the cache; the empty mock queue would
	// fail any second provider call.
	cands, err := h.Enrich(context.Background(), []string{"Epinephrine", "handrail"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cands) != 2 {
		t.Errorf("got %d cached candidates, want 2", len(cands))
	}
	if mock.CallCount() != 1 {
		t.Errorf("got %d provider calls, want 1", mock.CallCount())
	}
}

func TestEnrichBatchesLargeTermSets(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"candidates": []}`)},
		llm.MockResponse{Content: json.RawMessage(`{"candidates": []}`)},
	)
	cfg := DefaultConfig()
	cfg.MaxTermsPerRequest = 2
	h := New(mock, cfg)

	if _, err := h.Enrich(context.Background(), []string{"a", "b", "c"}); err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("got %d provider calls, want 2 batches", mock.CallCount())
	}
}

func TestEnrichIgnoresInventedKeywords(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"candidates": [
				{"keyword": "unsolicited", "tier": "safety", "sub_category": "falls", "weight": 1.0, "rationale": "not asked"}
			]
		}`)},
	)
	h := New(mock, DefaultConfig())

	cands, err := h.Enrich(context.Background(), []string{"handrail"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cands) != 0 {
		t.Errorf("got %d candidates, want 0 for an invented keyword", len(cands))
	}
}

func TestEntriesFiltersOntology(t *testing.T) {
	cands := []Candidate{
		{Keyword: "epinephrine", Tier: priority.TierLifeThreat, SubCategory: priority.SubCirculation, Weight: 2.0},
		{Keyword: "lavender", Tier: priority.TierNone, SubCategory: priority.SubNone, Weight: 0.5},
		// Sub-category outside the tier fails lexicon validation.
		{Keyword: "mismatch", Tier: priority.TierSafety, SubCategory: priority.SubAirway, Weight: 1.0},
	}

	entries := Entries(cands)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Keyword != "epinephrine" {
		t.Errorf("got %q", entries[0].Keyword)
	}
}
