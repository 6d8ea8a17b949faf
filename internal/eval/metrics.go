package eval

import "math"

// wilsonZ is the critical value for a 95% confidence interval.
const wilsonZ = 1.96

// Wilson returns the Wilson score interval for a proportion. Unlike the
// normal approximation it stays inside [0, 1] and behaves at small n.
func Wilson(successes, total int) (low, high float64) {
	if total == 0 {
		return 0, 0
	}
	n := float64(total)
	p := float64(successes) / n
	z := wilsonZ
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	margin := (z / denom) * math.Sqrt(p*(1-p)/n+z2/(4*n*n))

	return max(0, center-margin), min(1, center+margin)
}

// SetMetrics returns precision, recall, and F1 for a predicted label set
// against the correct set.
func SetMetrics(chosen, correct map[string]bool) (precision, recall, f1 float64) {
	var tp int
	for l := range chosen {
		if correct[l] {
			tp++
		}
	}

	if len(chosen) > 0 {
		precision = float64(tp) / float64(len(chosen))
	} else if len(correct) == 0 {
		precision = 1
	}
	if len(correct) > 0 {
		recall = float64(tp) / float64(len(correct))
	} else {
		recall = 1
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}

// KendallTau compares a predicted ordering against the correct one,
// returning a rank correlation in [-1, 1]. Only labels present in both
// orderings contribute; fewer than two shared labels yields 0.
func KendallTau(predicted, correct []string) float64 {
	predRank := make(map[string]int, len(predicted))
	for i, l := range predicted {
		predRank[l] = i
	}

	var shared []string
	for _, l := range correct {
		if _, ok := predRank[l]; ok {
			shared = append(shared, l)
		}
	}
	n := len(shared)
	if n < 2 {
		return 0
	}

	var concordant, discordant int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// shared is in correct order, so pair (i, j) is concordant
			// when the prediction agrees.
			if predRank[shared[i]] < predRank[shared[j]] {
				concordant++
			} else {
				discordant++
			}
		}
	}

	pairs := n * (n - 1) / 2
	return float64(concordant-discordant) / float64(pairs)
}
