// Package crf implements the linear-chain boundary model used for
// Vietnamese word segmentation: feature extraction over a token
// window, a trained model with state and transition weights, and
// Viterbi decoding into Begin/Inside labels.
package crf

import "errors"

// ErrInvalidModel indicates model bytes exist but are malformed.
var ErrInvalidModel = errors.New("crf: invalid model format")

// Label is a per-token boundary tag. A maximal run Begin, Inside*
// forms one output word.
type Label int

const (
	// Begin marks the first token of a word.
	Begin Label = iota
	// Inside marks a continuation token of the current word.
	Inside
)

// numLabels is fixed: the model only distinguishes word starts from
// word continuations.
const numLabels = 2

func (l Label) String() string {
	if l == Inside {
		return "I-W"
	}
	return "B-W"
}

// Tagger assigns a boundary label to every position of a feature
// sequence. Implementations must be deterministic and safe for
// concurrent use.
type Tagger interface {
	Predict(features [][]string) []Label
}

// Alphabet maps attribute strings to dense integer IDs.
type Alphabet struct {
	toID  map[string]int
	toStr []string
}

// NewAlphabet creates an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{toID: make(map[string]int)}
}

// Add interns s and returns its ID.
func (a *Alphabet) Add(s string) int {
	if id, ok := a.toID[s]; ok {
		return id
	}
	id := len(a.toStr)
	a.toID[s] = id
	a.toStr = append(a.toStr, s)
	return id
}

// Get returns the ID for s, or -1 if unknown.
func (a *Alphabet) Get(s string) int {
	if id, ok := a.toID[s]; ok {
		return id
	}
	return -1
}

// Size returns the number of interned attributes.
func (a *Alphabet) Size() int {
	return len(a.toStr)
}

// Model holds trained segmentation weights. The state vector is laid
// out attribute-major (attrID*numLabels + label); transitions are a
// flat numLabels x numLabels block. A Model is immutable once built
// and shared read-only across decode calls.
type Model struct {
	attrs *Alphabet
	state []float64
	trans [numLabels * numLabels]float64
}

// NewModel creates an empty model, ready for weight assignment by
// training tooling or tests.
func NewModel() *Model {
	return &Model{attrs: NewAlphabet()}
}

// SetWeight sets the state weight for an attribute/label pair,
// interning the attribute if needed.
func (m *Model) SetWeight(attr string, label Label, w float64) {
	id := m.attrs.Add(attr)
	if need := m.attrs.Size() * numLabels; len(m.state) < need {
		grown := make([]float64, need)
		copy(grown, m.state)
		m.state = grown
	}
	m.state[id*numLabels+int(label)] = w
}

// SetTransition sets the score for moving from one label to another.
func (m *Model) SetTransition(from, to Label, w float64) {
	m.trans[int(from)*numLabels+int(to)] = w
}

// weight returns the state weight for an attribute/label pair, zero
// for unknown attributes.
func (m *Model) weight(attr string, label Label) float64 {
	id := m.attrs.Get(attr)
	if id < 0 {
		return 0
	}
	return m.state[id*numLabels+int(label)]
}

// emission sums the state weights of all active features at one
// position for the given label.
func (m *Model) emission(features []string, label Label) float64 {
	var score float64
	for _, f := range features {
		score += m.weight(f, label)
	}
	return score
}

// transition returns the score for a label pair.
func (m *Model) transition(from, to Label) float64 {
	return m.trans[int(from)*numLabels+int(to)]
}

// Dummy is the deterministic fallback tagger used when no trained
// model is available: every token starts its own word.
type Dummy struct{}

// Predict labels every position Begin.
func (Dummy) Predict(features [][]string) []Label {
	return make([]Label, len(features))
}
