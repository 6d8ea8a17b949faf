package matcher

import (
	"strings"
	"unicode"
)

// token is a single lowercased word with its position in the source text.
type token struct {
	text  string
	start int // byte offset in the source
	end   int
}

// tokenize splits text into lowercased word tokens. A word is a run of
// letters, digits, apostrophes, and interior hyphens; everything else is a
// boundary. This is what makes matching word-boundary-aware: keywords are
// compared token-by-token, so "assess" never fires inside "reassessment".
func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{
				text:  strings.ToLower(text[start:i]),
				start: start,
				end:   i,
			})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{
			text:  strings.ToLower(text[start:]),
			start: start,
			end:   len(text),
		})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}

// keywordTokens splits a lexicon keyword into its lowercase token sequence.
func keywordTokens(keyword string) []string {
	raw := tokenize(keyword)
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = t.text
	}
	return out
}
