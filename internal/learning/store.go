package learning

import (
	"fmt"
	"sync"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/question"
)

// Record tracks how often a lexicon pattern contributed to a correct
// prediction. Created on first observation; persisted across runs by the
// injected Persistence collaborator.
type Record struct {
	Pattern    string
	Successes  int
	Failures   int
	Multiplier float64
}

// successRate returns the fraction of observed outcomes that were correct.
func (r Record) successRate() float64 {
	total := r.Successes + r.Failures
	if total == 0 {
		return 0.5
	}
	return float64(r.Successes) / float64(total)
}

// Persistence loads and saves learning records at process boundaries. The
// store treats it as an injected dependency; it owns no file format.
type Persistence interface {
	Load() (map[string]Record, error)
	Save(map[string]Record) error
}

// Config bounds the weight multiplier.
type Config struct {
	MinMultiplier float64
	MaxMultiplier float64
}

// DefaultConfig returns the stock multiplier bounds.
func DefaultConfig() Config {
	return Config{MinMultiplier: 0.5, MaxMultiplier: 2.0}
}

// Store is the adaptive weight layer: it records (pattern, outcome) pairs
// and exposes a bounded multiplier per pattern. This is monotone-dampened
// online learning, a heuristic with no convergence guarantee, not
// gradient training.
//
// The store is the only mutable shared state in the system. A single
// mutex serializes updates; reads take it too, so concurrent predictions
// always see a consistent snapshot. Updates recorded for one prediction
// only take effect on the next (nothing mutates mid-flight: the engine
// captured its weights when it matched).
type Store struct {
	mu      sync.Mutex
	records map[string]*Record
	cfg     Config
	persist Persistence
}

// NewStore creates an empty store. persist may be nil for in-memory use.
func NewStore(cfg Config, persist Persistence) *Store {
	if cfg.MinMultiplier <= 0 {
		cfg.MinMultiplier = 0.5
	}
	if cfg.MaxMultiplier < cfg.MinMultiplier {
		cfg.MaxMultiplier = 2.0
	}
	return &Store{
		records: make(map[string]*Record),
		cfg:     cfg,
		persist: persist,
	}
}

// Load pulls persisted records. On failure the store stays empty,
// equivalent to no learning yet, and the error is returned for the
// caller to report; it must never block the scoring path.
func (s *Store) Load() error {
	if s.persist == nil {
		return nil
	}
	loaded, err := s.persist.Load()
	if err != nil {
		return fmt.Errorf("load learning records: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, r := range loaded {
		rec := r
		s.records[k] = &rec
	}
	return nil
}

// Save writes the current records through the persistence collaborator.
func (s *Store) Save() error {
	if s.persist == nil {
		return nil
	}
	s.mu.Lock()
	out := make(map[string]Record, len(s.records))
	for k, r := range s.records {
		out[k] = *r
	}
	s.mu.Unlock()

	if err := s.persist.Save(out); err != nil {
		return fmt.Errorf("save learning records: %w", err)
	}
	return nil
}

// MultiplierFor returns the current multiplier for a pattern key, 1.0 for
// patterns never observed. Implements lexicon.MultiplierSource.
func (s *Store) MultiplierFor(pattern string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[pattern]; ok {
		return r.Multiplier
	}
	return 1.0
}

// RecordOutcome updates pattern counters from one graded prediction. Every
// contributing match of the chosen option(s) gets a success when the
// chosen labels intersect the correct answer set, a failure otherwise.
// Callable only when the question carries its answer key.
func (s *Store) RecordOutcome(q *question.Question, p *engine.Prediction) error {
	if !q.HasAnswerKey() {
		return fmt.Errorf("record outcome for %s: question has no correct answer set", q.ID)
	}

	success := false
	for _, label := range p.Chosen {
		if q.CorrectAnswers[label] {
			success = true
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, label := range p.Chosen {
		os, ok := p.Scores[label]
		if !ok {
			continue
		}
		for _, m := range os.Contributing {
			s.update(m.Entry.Key(), success)
		}
	}
	return nil
}

// update bumps one pattern's counters and recomputes its multiplier as
// clamp(min, max, 1 + (successRate - 0.5)). Caller holds the mutex.
func (s *Store) update(pattern string, success bool) {
	r, ok := s.records[pattern]
	if !ok {
		r = &Record{Pattern: pattern, Multiplier: 1.0}
		s.records[pattern] = r
	}
	if success {
		r.Successes++
	} else {
		r.Failures++
	}
	r.Multiplier = clamp(s.cfg.MinMultiplier, s.cfg.MaxMultiplier, 1+(r.successRate()-0.5))
}

// Records returns a copy of all records, for reporting.
func (s *Store) Records() map[string]Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Record, len(s.records))
	for k, r := range s.records {
		out[k] = *r
	}
	return out
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
