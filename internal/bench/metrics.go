package bench

// Metrics holds word-level evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// span is a word as a half-open token range.
type span struct {
	start, end int
}

// spans converts a word list into token ranges, counting each word's
// space-separated tokens.
func spans(words []string) map[span]int {
	out := make(map[span]int, len(words))
	pos := 0
	for _, w := range words {
		n := 1
		for i := 0; i < len(w); i++ {
			if w[i] == ' ' {
				n++
			}
		}
		out[span{pos, pos + n}]++
		pos += n
	}
	return out
}

// Evaluate compares a predicted segmentation against the gold one.
// A predicted word counts as correct only when its exact token span
// appears in the gold segmentation.
func Evaluate(predicted, gold []string) Metrics {
	predSpans := spans(predicted)
	goldSpans := spans(gold)

	tp := 0
	for s, n := range predSpans {
		if g, ok := goldSpans[s]; ok {
			if n < g {
				tp += n
			} else {
				tp += g
			}
		}
	}

	m := Metrics{
		TruePositives:  tp,
		FalsePositives: len(predicted) - tp,
		FalseNegatives: len(gold) - tp,
	}
	if len(predicted) > 0 {
		m.Precision = float64(tp) / float64(len(predicted))
	}
	if len(gold) > 0 {
		m.Recall = float64(tp) / float64(len(gold))
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Accumulate sums counts from another evaluation and recomputes the
// derived ratios.
func (m *Metrics) Accumulate(other Metrics) {
	m.TruePositives += other.TruePositives
	m.FalsePositives += other.FalsePositives
	m.FalseNegatives += other.FalseNegatives

	m.Precision, m.Recall, m.F1 = 0, 0, 0
	if p := m.TruePositives + m.FalsePositives; p > 0 {
		m.Precision = float64(m.TruePositives) / float64(p)
	}
	if g := m.TruePositives + m.FalseNegatives; g > 0 {
		m.Recall = float64(m.TruePositives) / float64(g)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
}
