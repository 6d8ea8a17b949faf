package lexicon

import (
	"fmt"
	"strings"

	"github.com/triagekit/triagetree/internal/priority"
)

// Entry maps a keyword or phrase to a tier, sub-category, and base weight.
// Matching is case-insensitive and word-boundary-aware; multi-word phrases
// are allowed. The same keyword may appear under several sub-categories
// when it is ambiguous; the matcher resolves overlaps by longest match,
// then highest weight.
type Entry struct {
	Keyword     string
	Tier        priority.Tier
	SubCategory priority.SubCategory
	Weight      float64
}

// Key returns the stable pattern identifier for this entry, used by the
// adaptive weight store to track per-entry outcomes.
func (e Entry) Key() string {
	return string(e.SubCategory) + ":" + strings.ToLower(e.Keyword)
}

// Validate checks the entry against the ontology. A zero or negative
// weight, an unknown tier, or a sub-category that does not belong to the
// entry's tier is a configuration error.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Keyword) == "" {
		return &ConfigurationError{Entry: e, Reason: "empty keyword"}
	}
	if e.Weight <= 0 {
		return &ConfigurationError{Entry: e, Reason: fmt.Sprintf("non-positive weight %g", e.Weight)}
	}
	if !e.Tier.Valid() {
		return &ConfigurationError{Entry: e, Reason: fmt.Sprintf("unknown tier %q", e.Tier)}
	}
	if !priority.BelongsTo(e.SubCategory, e.Tier) {
		return &ConfigurationError{
			Entry:  e,
			Reason: fmt.Sprintf("sub-category %q does not belong to tier %q", e.SubCategory, e.Tier),
		}
	}
	return nil
}

// ConfigurationError reports an invalid lexicon entry. Raised when loading
// the lexicon, never during prediction.
type ConfigurationError struct {
	Entry  Entry
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid lexicon entry %q: %s", e.Entry.Keyword, e.Reason)
}
