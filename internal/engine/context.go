package engine

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/triagekit/triagetree/internal/priority"
)

// contextStrategy is the opt-in "context-aware" enhancement: it reads
// vital-sign values out of the stem and, when one is extreme, adds a flat
// bonus to options whose contributing matches touch the implicated
// sub-system. On the source material's own case-study validation this
// strategy performs worse than the base heuristic, which is why it is
// never enabled by default.
type contextStrategy struct {
	rules []vitalRule
	bonus float64
}

// vitalRule extracts one vital sign and decides whether its value is
// extreme enough to implicate a sub-category.
type vitalRule struct {
	name    string
	re      *regexp.Regexp
	extreme func(v int) bool
	sub     priority.SubCategory
}

func newContextStrategy() *contextStrategy {
	return &contextStrategy{
		bonus: 1.0,
		rules: []vitalRule{
			{
				name:    "heart-rate",
				re:      regexp.MustCompile(`(?i)\b(?:heart rate|hr)\D{0,10}(\d{2,3})`),
				extreme: func(v int) bool { return v < 50 || v > 120 },
				sub:     priority.SubCirculation,
			},
			{
				name:    "respiratory-rate",
				re:      regexp.MustCompile(`(?i)\b(?:respiratory rate|rr)\D{0,10}(\d{1,2})`),
				extreme: func(v int) bool { return v < 10 || v > 30 },
				sub:     priority.SubBreathing,
			},
			{
				name:    "oxygen-saturation",
				re:      regexp.MustCompile(`(?i)\b(?:o2 sat|spo2|oxygen saturation)\D{0,10}(\d{2,3})`),
				extreme: func(v int) bool { return v < 90 },
				sub:     priority.SubBreathing,
			},
			{
				name:    "systolic-bp",
				re:      regexp.MustCompile(`(?i)\b(?:blood pressure|bp)\D{0,10}(\d{2,3})/\d{2,3}`),
				extreme: func(v int) bool { return v < 90 || v > 180 },
				sub:     priority.SubCirculation,
			},
			{
				name:    "blood-glucose",
				re:      regexp.MustCompile(`(?i)\b(?:blood (?:glucose|sugar)|glucose)\D{0,10}(\d{2,3})`),
				extreme: func(v int) bool { return v < 70 || v > 400 },
				sub:     priority.SubGlucose,
			},
		},
	}
}

// apply scans the stem for extreme vitals and bumps the scores of options
// already matching the implicated sub-category. It only re-weights within
// an option's selected tier, so tier dominance is untouched.
func (c *contextStrategy) apply(stem string, p *Prediction, traced bool) {
	implicated := map[priority.SubCategory]string{}
	for _, r := range c.rules {
		m := r.re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil || !r.extreme(v) {
			continue
		}
		implicated[r.sub] = fmt.Sprintf("%s=%d", r.name, v)
	}
	if len(implicated) == 0 {
		return
	}

	for label, os := range p.Scores {
		for _, m := range os.Contributing {
			if detail, ok := implicated[m.SubCategory]; ok {
				os.Score += c.bonus
				p.Scores[label] = os
				if traced {
					p.Trace = append(p.Trace, TraceEvent{
						Rule:   "context-vitals",
						Label:  label,
						Detail: fmt.Sprintf("extreme %s implicates %s", detail, m.SubCategory),
					})
				}
				break
			}
		}
	}
}
