package engine

import (
	"github.com/triagekit/triagetree/internal/scoring"
)

// Prediction is the immutable output of one engine invocation.
type Prediction struct {
	ID         string // run-unique identifier
	QuestionID string

	// Chosen holds the predicted labels: one for single-answer, zero or
	// more for select-all-that-apply, the full best-first ordering for
	// ordered-response. Always sorted deterministically.
	Chosen []string

	// Scores are the per-option results the choice was made from.
	Scores map[string]scoring.OptionScore

	// NoSignal is set when no option matched anything in the lexicon.
	// The prediction is then a defined fallback, not an error; callers
	// should treat it as low-confidence.
	NoSignal bool

	// Trace records rule firings in order. Populated only when the
	// engine runs with tracing enabled; purely observational.
	Trace []TraceEvent
}

// IsChosen reports whether label is in the predicted set.
func (p *Prediction) IsChosen(label string) bool {
	for _, l := range p.Chosen {
		if l == label {
			return true
		}
	}
	return false
}

// TraceEvent is one rule firing during a prediction.
type TraceEvent struct {
	Rule   string // e.g. "match", "tier-select", "tie-break", "no-signal"
	Label  string // option label, when the event concerns one option
	Detail string
}

// Config holds engine toggles.
type Config struct {
	// Trace enables decision-trace recording.
	Trace bool

	// IncludeStem folds the stem text into each option before matching.
	IncludeStem bool

	// Exceptions enables EXCEPT/AVOID stem detection, which inverts
	// single-answer selection.
	Exceptions bool

	// ContextAware enables the vital-sign context strategy. Off by
	// default: the base heuristic measurably beats it on case-study
	// validation, so it is strictly opt-in.
	ContextAware bool
}

// DefaultConfig returns the stock engine configuration: exceptions on,
// tracing and context-awareness off.
func DefaultConfig() Config {
	return Config{Exceptions: true}
}
