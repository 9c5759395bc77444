package vitok

import (
	"github.com/jamesainslie/go-vitok/crf"
	"github.com/jamesainslie/go-vitok/normalize"
	"github.com/jamesainslie/go-vitok/tokenizer"
)

// fixedWordSet holds caller-supplied phrases as a trie over their
// token texts, built once at segmenter construction and immutable
// afterwards. Matching is exact on the normalized token forms, so a
// phrase given in a legacy spelling still matches text that
// normalized to the same canonical form.
type fixedWordSet struct {
	root *trieNode
}

type trieNode struct {
	children map[string]*trieNode
	terminal bool
}

// newFixedWordSet tokenizes each phrase with the same pipeline the
// segmenter applies to input text. Phrases that cannot be tokenized
// are skipped: they could never align with a lattice span.
func newFixedWordSet(phrases []string, tok *tokenizer.Tokenizer, charNorm, tokenNorm bool) *fixedWordSet {
	root := &trieNode{}
	for _, phrase := range phrases {
		if charNorm {
			phrase = normalize.Characters(phrase)
		}
		tokens, err := tok.Tokenize(phrase)
		if err != nil {
			continue
		}

		node := root
		count := 0
		for _, t := range tokens {
			if t.Kind == tokenizer.Whitespace {
				continue
			}
			text := t.Text
			if tokenNorm {
				text = normalize.Token(text, charNorm)
			}
			if node.children == nil {
				node.children = make(map[string]*trieNode)
			}
			child := node.children[text]
			if child == nil {
				child = &trieNode{}
				node.children[text] = child
			}
			node = child
			count++
		}
		if count > 0 {
			node.terminal = true
		}
	}
	return &fixedWordSet{root: root}
}

// merge overlays fixed-word matches onto the decoded labels. The scan
// is greedy left to right with longest match at each start, so an
// earlier-starting match always wins and ties go to the longer one;
// a losing overlap is simply never reached. Each matched span becomes
// Begin, Inside, ..., Inside, and the unit after the span is forced
// to Begin so the merge can never leak into the following word.
func (f *fixedWordSet) merge(units []string, labels []crf.Label) []crf.Label {
	i := 0
	for i < len(units) {
		length := f.longestMatch(units[i:])
		if length == 0 {
			i++
			continue
		}
		labels[i] = crf.Begin
		for j := i + 1; j < i+length; j++ {
			labels[j] = crf.Inside
		}
		if next := i + length; next < len(labels) {
			labels[next] = crf.Begin
		}
		i += length
	}
	return labels
}

// longestMatch returns the length in units of the longest phrase
// starting at units[0], or zero.
func (f *fixedWordSet) longestMatch(units []string) int {
	node := f.root
	longest := 0
	for i, unit := range units {
		node = node.children[unit]
		if node == nil {
			break
		}
		if node.terminal {
			longest = i + 1
		}
	}
	return longest
}
