// Package tokenizer splits Vietnamese text into base lexical tokens.
//
// Tokens carry byte offsets into the original text and together cover
// it exactly: concatenating all token texts in order reproduces the
// input. Classification uses an ordered cascade of compiled matchers,
// each claiming the longest prefix of its class at the current
// position before falling through to the next.
package tokenizer

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates the input text is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("tokenizer: text is not valid UTF-8")

// Token represents one base lexical unit with its position in the
// original text.
type Token struct {
	Text  string
	Start int // byte offset in original text
	End   int // byte offset in original text
	Kind  Kind
}

// TaggedToken pairs a token's text with the name of its kind, the
// shape used by callers that only need (text, tag) pairs.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tokenizer scans text into base tokens. The matcher cascade is
// compiled once at package initialization and shared, so construction
// is free and a Tokenizer is safe for concurrent use.
type Tokenizer struct{}

// New returns a tokenizer backed by the shared matcher cascade.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize scans text into an ordered, contiguous, non-overlapping
// token sequence whose spans exactly partition the input. It fails
// only when text is not valid UTF-8.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	tokens := make([]Token, 0, len(text)/4+1)
	pos := 0
	for pos < len(text) {
		length, kind := matchAt(text[pos:])
		tokens = append(tokens, Token{
			Text:  text[pos : pos+length],
			Start: pos,
			End:   pos + length,
			Kind:  kind,
		})
		pos += length
	}
	return tokens, nil
}

// TokenizeWithTags returns (text, kind-name) pairs for each token.
func (t *Tokenizer) TokenizeWithTags(text string) ([]TaggedToken, error) {
	tokens, err := t.Tokenize(text)
	if err != nil {
		return nil, err
	}
	tagged := make([]TaggedToken, len(tokens))
	for i, tok := range tokens {
		tagged[i] = TaggedToken{Text: tok.Text, Tag: tok.Kind.String()}
	}
	return tagged, nil
}

// Words returns the texts of all non-whitespace tokens in order.
func (t *Tokenizer) Words(text string) ([]string, error) {
	tokens, err := t.Tokenize(text)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != Whitespace {
			words = append(words, tok.Text)
		}
	}
	return words, nil
}

// TokenizeText returns the non-whitespace token texts joined by
// single spaces.
func (t *Tokenizer) TokenizeText(text string) (string, error) {
	words, err := t.Words(text)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// matchAt classifies the longest prefix of s, trying each matcher in
// priority order. The final fallback claims a single rune, so every
// position is covered.
func matchAt(s string) (int, Kind) {
	for _, m := range cascade {
		loc := m.re.FindStringIndex(s)
		if loc == nil || loc[1] == 0 {
			continue
		}
		if m.notAtEnd && loc[1] == len(s) {
			continue
		}
		return loc[1], m.kind
	}
	_, size := utf8.DecodeRuneInString(s)
	return size, Other
}
