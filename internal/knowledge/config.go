package knowledge

// Config holds generation parameters for lexicon enrichment.
type Config struct {
	// MaxTokens caps the enrichment response length.
	MaxTokens int

	// Temperature for generation. Enrichment wants consistency, so the
	// default is low.
	Temperature float64

	// MaxTermsPerRequest bounds how many terms go into one prompt.
	// Larger batches save tokens but degrade per-term accuracy.
	MaxTermsPerRequest int
}

// DefaultConfig returns enrichment defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          2048,
		Temperature:        0.2,
		MaxTermsPerRequest: 20,
	}
}
