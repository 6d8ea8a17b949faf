package matcher

// Default heuristic constants. The source material never derives these
// formally, so they are configuration, not protocol.
const (
	// DefaultNegationWindow is how many tokens before a keyword a
	// negation cue still suppresses the match.
	DefaultNegationWindow = 3

	// DefaultEmphasisMultiplier boosts option matches when the stem uses
	// explicit priority phrasing ("first", "priority", ...).
	DefaultEmphasisMultiplier = 1.5
)

// Config holds the matcher's tunable heuristics.
type Config struct {
	// NegationWindow is the token distance for negation suppression.
	NegationWindow int

	// NegationCues are tokens that suppress a following keyword match.
	NegationCues []string

	// EmphasisMultiplier scales every option match when the stem carries
	// an emphasis cue.
	EmphasisMultiplier float64

	// EmphasisCues are stem phrases that signal an explicit priority
	// question.
	EmphasisCues []string
}

// DefaultConfig returns the stock heuristic configuration.
func DefaultConfig() Config {
	return Config{
		NegationWindow:     DefaultNegationWindow,
		NegationCues:       []string{"no", "not", "deny", "denies", "denied", "without"},
		EmphasisMultiplier: DefaultEmphasisMultiplier,
		EmphasisCues:       []string{"first", "immediate", "immediately", "priority", "most important", "initial"},
	}
}
