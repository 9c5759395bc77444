package crf

import "math"

// Predict returns the maximum-scoring label sequence for the feature
// sequence. Scores are sums of per-position emissions and per-pair
// transitions in log domain. The first position is constrained to
// Begin; ties are broken toward Begin at the earliest position, so
// output is stable across runs.
func (m *Model) Predict(features [][]string) []Label {
	n := len(features)
	if n == 0 {
		return nil
	}

	score := make([][numLabels]float64, n)
	back := make([][numLabels]Label, n)

	// First token always starts a word.
	score[0][Begin] = m.emission(features[0], Begin)
	score[0][Inside] = math.Inf(-1)

	for t := 1; t < n; t++ {
		for _, cur := range []Label{Begin, Inside} {
			em := m.emission(features[t], cur)
			best := math.Inf(-1)
			var from Label
			// Begin is tried first; strict comparison keeps it on
			// ties, which realizes the earliest-Begin tie-break.
			for _, prev := range []Label{Begin, Inside} {
				if s := score[t-1][prev] + m.transition(prev, cur); s > best {
					best = s
					from = prev
				}
			}
			score[t][cur] = best + em
			back[t][cur] = from
		}
	}

	labels := make([]Label, n)
	last := Begin
	if score[n-1][Inside] > score[n-1][Begin] {
		last = Inside
	}
	labels[n-1] = last
	for t := n - 1; t > 0; t-- {
		last = back[t][last]
		labels[t-1] = last
	}
	return labels
}
