package engine

import "regexp"

// Exclusion questions ask for the option that does NOT belong ("all of the
// following EXCEPT...", "which should the nurse avoid?"). The standard
// ranking then points at exactly the wrong end, so single-answer selection
// flips to the lowest-ranked option.
var exclusionRe = regexp.MustCompile(`(?i)\b(except|avoid|contraindicated|not appropriate|should not|must not|all but)\b`)

// isExclusionStem reports whether the stem is an exclusion question.
func isExclusionStem(stem string) bool {
	return exclusionRe.MatchString(stem)
}
