package lexicon

// MultiplierSource supplies per-entry weight multipliers. The adaptive
// weight store implements it; a nil source means every multiplier is 1.0.
type MultiplierSource interface {
	// MultiplierFor returns the current multiplier for a pattern key.
	// Unknown patterns return 1.0.
	MultiplierFor(pattern string) float64
}

// Lexicon holds the keyword-to-tier entries the matcher scans with.
// Entries are read-mostly: they are loaded up front (seed table plus any
// enrichment), and only their effective weights change afterwards, via the
// injected MultiplierSource. An empty lexicon is valid and yields no
// matches.
type Lexicon struct {
	entries []Entry
	adjust  MultiplierSource
}

// New builds a lexicon from the given entries. Every entry is validated;
// the first invalid one aborts the load with a *ConfigurationError.
func New(entries []Entry) (*Lexicon, error) {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return &Lexicon{entries: out}, nil
}

// Default returns a lexicon loaded with the seed table.
func Default() *Lexicon {
	lex, err := New(seedEntries)
	if err != nil {
		// The seed table is compile-time data; an invalid entry is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return lex
}

// AllEntries returns every entry. The matcher does its own scanning; the
// lexicon never exposes a text-lookup operation.
func (l *Lexicon) AllEntries() []Entry {
	return l.entries
}

// WeightOf returns the entry's effective weight: base weight times the
// adaptive multiplier, when a multiplier source is attached.
func (l *Lexicon) WeightOf(e Entry) float64 {
	if l.adjust == nil {
		return e.Weight
	}
	return e.Weight * l.adjust.MultiplierFor(e.Key())
}

// SetMultiplierSource attaches the adaptive weight store. Call before any
// prediction that should see learned weights; the source is consulted on
// every WeightOf call, so updates recorded after a prediction only affect
// the next one.
func (l *Lexicon) SetMultiplierSource(src MultiplierSource) {
	l.adjust = src
}

// Add validates and appends entries in bulk. This is the loader surface
// for enrichment sources (e.g. the knowledge helper); it is meant to run
// before predictions start, not between them.
func (l *Lexicon) Add(entries ...Entry) error {
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	l.entries = append(l.entries, entries...)
	return nil
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}
