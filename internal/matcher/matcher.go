package matcher

import (
	"sort"
	"strings"

	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/priority"
)

// Span is a token range [Start, End) in the scanned text.
type Span struct {
	Start int
	End   int
}

// overlaps reports whether two spans share any token.
func (s Span) overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Match is one lexicon hit in a piece of text. Weight is the effective
// weight (base weight times any adaptive multiplier) at scan time.
// Suppressed matches are reported for traceability but carry no score.
type Match struct {
	Entry       lexicon.Entry
	Tier        priority.Tier
	SubCategory priority.SubCategory
	Weight      float64
	Span        Span
	Text        string // the matched slice of the original text
	Suppressed  bool   // a negation cue preceded the keyword
}

// Matcher scans text for lexicon keywords. It is safe for concurrent use
// against a fixed lexicon snapshot: Match never mutates shared state.
type Matcher struct {
	lex *lexicon.Lexicon
	cfg Config
}

// New creates a matcher over the given lexicon.
func New(lex *lexicon.Lexicon, cfg Config) *Matcher {
	if cfg.NegationWindow <= 0 {
		cfg.NegationWindow = DefaultNegationWindow
	}
	if cfg.EmphasisMultiplier <= 0 {
		cfg.EmphasisMultiplier = DefaultEmphasisMultiplier
	}
	return &Matcher{lex: lex, cfg: cfg}
}

// Match scans text for every lexicon keyword, case-insensitive and
// word-boundary-aware. Overlapping candidates are resolved longest-first,
// then highest-weight: a single span contributes at most one match.
// Negation-suppressed matches are returned with Suppressed set so callers
// can trace them; they must not contribute to any score. Never fails; no
// matches yields an empty slice.
func (m *Matcher) Match(text string) []Match {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var candidates []Match
	for _, e := range m.lex.AllEntries() {
		kw := keywordTokens(e.Keyword)
		if len(kw) == 0 {
			continue
		}
		for i := 0; i+len(kw) <= len(tokens); i++ {
			if !tokensMatchAt(tokens, i, kw) {
				continue
			}
			span := Span{Start: i, End: i + len(kw)}
			candidates = append(candidates, Match{
				Entry:       e,
				Tier:        e.Tier,
				SubCategory: e.SubCategory,
				Weight:      m.lex.WeightOf(e),
				Span:        span,
				Text:        text[tokens[i].start:tokens[i+len(kw)-1].end],
				Suppressed:  m.negated(tokens, i),
			})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Longest keyword first, then highest weight, then position for a
	// stable order.
	sort.SliceStable(candidates, func(a, b int) bool {
		la := candidates[a].Span.End - candidates[a].Span.Start
		lb := candidates[b].Span.End - candidates[b].Span.Start
		if la != lb {
			return la > lb
		}
		if candidates[a].Weight != candidates[b].Weight {
			return candidates[a].Weight > candidates[b].Weight
		}
		return candidates[a].Span.Start < candidates[b].Span.Start
	})

	// Greedy interval selection: accept a candidate only if it does not
	// overlap an already accepted span.
	var accepted []Match
	for _, c := range candidates {
		clash := false
		for _, a := range accepted {
			if c.Span.overlaps(a.Span) {
				clash = true
				break
			}
		}
		if !clash {
			accepted = append(accepted, c)
		}
	}

	// Report matches in text order.
	sort.Slice(accepted, func(a, b int) bool {
		return accepted[a].Span.Start < accepted[b].Span.Start
	})
	return accepted
}

// EmphasisBoost returns the multiplier to apply to all option matches for
// a question whose stem contains an emphasis cue, or 1.0 otherwise.
func (m *Matcher) EmphasisBoost(stem string) float64 {
	lower := strings.ToLower(stem)
	for _, cue := range m.cfg.EmphasisCues {
		if containsPhrase(lower, cue) {
			return m.cfg.EmphasisMultiplier
		}
	}
	return 1.0
}

// negated reports whether a negation cue appears within the configured
// window immediately preceding the token at index start. This is a
// heuristic window check, not negation parsing: "no pulse" suppresses
// "pulse", while in "no pulse. Start compressions" the cue is outside the
// window of "compressions" only if the window says so.
func (m *Matcher) negated(tokens []token, start int) bool {
	lo := start - m.cfg.NegationWindow
	if lo < 0 {
		lo = 0
	}
	for i := lo; i < start; i++ {
		for _, cue := range m.cfg.NegationCues {
			if tokens[i].text == cue {
				return true
			}
		}
	}
	return false
}

func tokensMatchAt(tokens []token, at int, kw []string) bool {
	for j, w := range kw {
		if tokens[at+j].text != w {
			return false
		}
	}
	return true
}

// containsPhrase checks for a word-boundary occurrence of phrase in the
// already-lowercased text.
func containsPhrase(lower, phrase string) bool {
	tokens := tokenize(lower)
	kw := keywordTokens(phrase)
	if len(kw) == 0 {
		return false
	}
	for i := 0; i+len(kw) <= len(tokens); i++ {
		if tokensMatchAt(tokens, i, kw) {
			return true
		}
	}
	return false
}
