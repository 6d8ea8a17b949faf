package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/llm"
	"github.com/triagekit/triagetree/internal/priority"
)

// Candidate is one classified term from an enrichment response. A tier
// of TierNone means the model saw no priority signal in the term.
type Candidate struct {
	Keyword     string
	Tier        priority.Tier
	SubCategory priority.SubCategory
	Weight      float64
	Rationale   string
}

// Helper classifies clinical terms into lexicon candidates using an LLM
// provider. It only ever sends bare terms, never question text, so
// enrichment cannot leak answers back into predictions.
type Helper struct {
	provider llm.Provider
	config   Config

	mu    sync.Mutex
	cache map[string]Candidate
}

// New creates a Helper with the given provider and config.
func New(provider llm.Provider, cfg Config) *Helper {
	return &Helper{
		provider: provider,
		config:   cfg,
		cache:    make(map[string]Candidate),
	}
}

// candidateOutput is the raw response shape before validation.
type candidateOutput struct {
	Candidates []struct {
		Keyword     string  `json:"keyword"`
		Tier        string  `json:"tier"`
		SubCategory string  `json:"sub_category"`
		Weight      float64 `json:"weight"`
		Rationale   string  `json:"rationale"`
	} `json:"candidates"`
}

// Enrich classifies the given terms, batching requests and reusing
// cached classifications. Terms the model places outside the ontology
// come back with TierNone.
func (h *Helper) Enrich(ctx context.Context, terms []string) ([]Candidate, error) {
	var out []Candidate
	var missing []string

	h.mu.Lock()
	for _, t := range terms {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" {
			continue
		}
		if c, ok := h.cache[key]; ok {
			out = append(out, c)
		} else {
			missing = append(missing, key)
		}
	}
	h.mu.Unlock()

	for start := 0; start < len(missing); start += h.config.MaxTermsPerRequest {
		end := min(start+h.config.MaxTermsPerRequest, len(missing))
		batch, err := h.classify(ctx, missing[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}

	return out, nil
}

func (h *Helper) classify(ctx context.Context, terms []string) ([]Candidate, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(terms)},
		},
		Schema:      CandidateSchema,
		MaxTokens:   h.config.MaxTokens,
		Temperature: h.config.Temperature,
	}

	resp, err := h.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}

	var raw candidateOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse enrichment response: %w", err)
	}

	asked := make(map[string]bool, len(terms))
	for _, t := range terms {
		asked[t] = true
	}

	var out []Candidate
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, rc := range raw.Candidates {
		key := strings.ToLower(strings.TrimSpace(rc.Keyword))
		if !asked[key] {
			continue
		}
		c := Candidate{
			Keyword:     key,
			Tier:        parseTier(rc.Tier),
			SubCategory: parseSub(rc.SubCategory),
			Weight:      rc.Weight,
			Rationale:   rc.Rationale,
		}
		h.cache[key] = c
		out = append(out, c)
	}
	return out, nil
}

// Entries converts candidates into lexicon entries, dropping terms
// outside the ontology and anything that fails lexicon validation.
func Entries(cands []Candidate) []lexicon.Entry {
	var out []lexicon.Entry
	for _, c := range cands {
		if c.Tier == priority.TierNone {
			continue
		}
		e := lexicon.Entry{
			Keyword:     c.Keyword,
			Tier:        c.Tier,
			SubCategory: c.SubCategory,
			Weight:      c.Weight,
		}
		if err := e.Validate(); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

func parseTier(s string) priority.Tier {
	t := priority.Tier(s)
	if t.Valid() {
		return t
	}
	return priority.TierNone
}

func parseSub(s string) priority.SubCategory {
	if s == "none" || s == "" {
		return priority.SubNone
	}
	sub := priority.SubCategory(s)
	if priority.TierOf(sub) != priority.TierNone {
		return sub
	}
	return priority.SubNone
}
