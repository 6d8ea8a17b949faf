package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/matcher"
	"github.com/triagekit/triagetree/internal/priority"
	"github.com/triagekit/triagetree/internal/question"
	"github.com/triagekit/triagetree/internal/scoring"
)

// Engine runs the full pipeline per question: match, aggregate, rank,
// tie-break. Predict is a pure function of the question and the current
// lexicon snapshot, so concurrent predictions against a read-only lexicon
// need no coordination.
type Engine struct {
	agg *scoring.Aggregator
	cfg Config
	ctx *contextStrategy
}

// New builds an engine over a lexicon with the given matcher and engine
// configuration.
func New(lex *lexicon.Lexicon, mcfg matcher.Config, cfg Config) *Engine {
	m := matcher.New(lex, mcfg)
	agg := scoring.NewAggregator(m)
	agg.IncludeStem = cfg.IncludeStem

	e := &Engine{agg: agg, cfg: cfg}
	if cfg.ContextAware {
		e.ctx = newContextStrategy()
	}
	return e
}

// Predict classifies the question and returns the prediction. It never
// fails on a well-formed question; degenerate inputs (empty lexicon,
// all-zero scores, a single option) all have defined deterministic
// outputs.
func (e *Engine) Predict(q *question.Question) *Prediction {
	p := &Prediction{
		ID:         uuid.New().String(),
		QuestionID: q.ID,
	}

	p.Scores = e.agg.Score(q)

	if e.ctx != nil {
		e.ctx.apply(q.Stem, p, e.cfg.Trace)
	}

	e.traceMatches(p)

	ranked := scoring.Rank(p.Scores)

	if allZero(p.Scores) {
		p.NoSignal = true
		e.trace(p, TraceEvent{Rule: "no-signal", Detail: "no lexicon matches in any option"})
		switch q.Format {
		case question.FormatMulti:
			p.Chosen = []string{}
		case question.FormatOrdered:
			p.Chosen = ranked // lexical order; still deterministic
		default:
			p.Chosen = []string{q.Labels()[0]}
		}
		return p
	}

	switch q.Format {
	case question.FormatMulti:
		p.Chosen = e.selectMulti(p, ranked)
	case question.FormatOrdered:
		p.Chosen = ranked
		e.trace(p, TraceEvent{Rule: "rank", Detail: fmt.Sprintf("ordered response: %v", ranked)})
	default:
		p.Chosen = e.selectSingle(q, p, ranked)
	}

	return p
}

// selectSingle picks the top-ranked label, inverting to the bottom-ranked
// one when the stem is an exclusion question.
func (e *Engine) selectSingle(q *question.Question, p *Prediction, ranked []string) []string {
	if tb := scoring.TieBreakUsed(p.Scores, ranked); tb != scoring.TieBreakNone {
		e.trace(p, TraceEvent{Rule: "tie-break", Label: ranked[0], Detail: string(tb)})
	}

	if e.cfg.Exceptions && isExclusionStem(q.Stem) {
		last := ranked[len(ranked)-1]
		e.trace(p, TraceEvent{
			Rule:   "exception",
			Label:  last,
			Detail: "exclusion stem: selecting lowest-priority option",
		})
		return []string{last}
	}

	e.trace(p, TraceEvent{
		Rule:   "select",
		Label:  ranked[0],
		Detail: fmt.Sprintf("tier=%s score=%.2f", p.Scores[ranked[0]].Tier, p.Scores[ranked[0]].Score),
	})
	return []string{ranked[0]}
}

// selectMulti returns exactly the options that tie for the globally
// highest tier and scored above zero. SATA answers are drawn from the
// top-priority tier represented in the option set, not thresholded per
// option.
func (e *Engine) selectMulti(p *Prediction, ranked []string) []string {
	top := priority.TierNone
	for _, os := range p.Scores {
		if os.Score <= 0 {
			continue
		}
		if top == priority.TierNone || os.Tier.Outranks(top) {
			top = os.Tier
		}
	}

	var chosen []string
	for _, label := range ranked {
		os := p.Scores[label]
		if os.Score > 0 && os.Tier == top {
			chosen = append(chosen, label)
			e.trace(p, TraceEvent{
				Rule:   "select",
				Label:  label,
				Detail: fmt.Sprintf("in top tier %s, score=%.2f", top, os.Score),
			})
		}
	}
	return chosen
}

func (e *Engine) traceMatches(p *Prediction) {
	if !e.cfg.Trace {
		return
	}
	for _, label := range scoring.Rank(p.Scores) {
		os := p.Scores[label]
		for _, m := range os.Contributing {
			e.trace(p, TraceEvent{
				Rule:   "match",
				Label:  label,
				Detail: fmt.Sprintf("%q -> %s/%s weight=%.2f", m.Text, m.Tier, m.SubCategory, m.Weight),
			})
		}
		for _, m := range os.Discarded {
			reason := "lower tier"
			if m.Suppressed {
				reason = "negated"
			}
			e.trace(p, TraceEvent{
				Rule:   "discard",
				Label:  label,
				Detail: fmt.Sprintf("%q -> %s/%s (%s)", m.Text, m.Tier, m.SubCategory, reason),
			})
		}
		if os.Tier != priority.TierNone {
			e.trace(p, TraceEvent{
				Rule:   "tier-select",
				Label:  label,
				Detail: fmt.Sprintf("selected tier %s, score=%.2f (boost %.2fx)", os.Tier, os.Score, os.Boost),
			})
		}
	}
}

// trace appends an event when tracing is enabled, except for the
// no-signal flag, which is always recorded so callers can detect
// low-confidence predictions.
func (e *Engine) trace(p *Prediction, ev TraceEvent) {
	if !e.cfg.Trace && ev.Rule != "no-signal" {
		return
	}
	p.Trace = append(p.Trace, ev)
}

func allZero(scores map[string]scoring.OptionScore) bool {
	for _, os := range scores {
		if os.Score > 0 {
			return false
		}
	}
	return true
}
