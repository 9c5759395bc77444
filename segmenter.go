package vitok

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/go-vitok/crf"
	"github.com/jamesainslie/go-vitok/normalize"
	"github.com/jamesainslie/go-vitok/tokenizer"
)

// Segmenter splits Vietnamese text into word tokens using a trained
// boundary model with a deterministic fallback. It is safe for
// concurrent use.
type Segmenter struct {
	tok       *tokenizer.Tokenizer
	tagger    crf.Tagger
	fixed     *fixedWordSet
	charNorm  bool
	tokenNorm bool
}

// New creates a Segmenter. A missing or corrupt trained model is
// recovered by substituting the deterministic fallback tagger;
// corrupt normalization tables fail construction.
func New(opts ...Option) (*Segmenter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// The tables are embedded; failing here means the build is broken
	// and no later call could succeed.
	if _, err := normalize.Load(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRulesFailed, err)
	}

	tagger := cfg.tagger
	if tagger == nil {
		model, err := crf.Load(cfg.modelPath)
		if err != nil {
			cfg.logger.Warn("segmentation model unavailable, every base token becomes its own word",
				"path", cfg.modelPath, "error", err)
			tagger = crf.Dummy{}
		} else {
			tagger = model
		}
	}

	s := &Segmenter{
		tok:       tokenizer.New(),
		tagger:    tagger,
		charNorm:  cfg.charNorm,
		tokenNorm: cfg.tokenNorm,
	}
	if len(cfg.fixedWords) > 0 {
		s.fixed = newFixedWordSet(cfg.fixedWords, s.tok, s.charNorm, s.tokenNorm)
	}
	return s, nil
}

// WordTokenize segments text into words. Each returned string is one
// word; multi-token words keep a single space between their tokens.
func (s *Segmenter) WordTokenize(text string) ([]string, error) {
	units, labels, err := s.segment(text)
	if err != nil {
		return nil, err
	}

	var words []string
	for i, unit := range units {
		if i > 0 && labels[i] == crf.Inside {
			words[len(words)-1] += " " + unit
			continue
		}
		words = append(words, unit)
	}
	return words, nil
}

// WordTokenizeText segments text into the underscore format: tokens
// inside one word are joined with underscores, words are separated by
// single spaces.
func (s *Segmenter) WordTokenizeText(text string) (string, error) {
	words, err := s.WordTokenize(text)
	if err != nil {
		return "", err
	}
	for i, w := range words {
		words[i] = strings.ReplaceAll(w, " ", "_")
	}
	return strings.Join(words, " "), nil
}

// Tokenize scans text into base tokens after the configured
// normalization passes. Offsets refer to the normalized text.
func (s *Segmenter) Tokenize(text string) ([]tokenizer.Token, error) {
	if s.charNorm {
		text = normalize.Characters(text)
	}
	tokens, err := s.tok.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidText, err)
	}
	if s.tokenNorm {
		for i, tok := range tokens {
			if tok.Kind == tokenizer.Whitespace {
				continue
			}
			tokens[i].Text = normalize.Token(tok.Text, s.charNorm)
		}
	}
	return tokens, nil
}

// segment runs the pipeline up to labeled units: normalize, tokenize,
// extract features, decode, apply fixed-word overrides.
func (s *Segmenter) segment(text string) ([]string, []crf.Label, error) {
	if text == "" {
		return nil, nil, nil
	}
	if s.charNorm {
		text = normalize.Characters(text)
	}

	tokens, err := s.tok.Tokenize(text)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidText, err)
	}

	units := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == tokenizer.Whitespace {
			continue
		}
		unit := tok.Text
		if s.tokenNorm {
			unit = normalize.Token(unit, s.charNorm)
		}
		units = append(units, unit)
	}
	if len(units) == 0 {
		return nil, nil, nil
	}

	labels := s.tagger.Predict(crf.Extract(units))
	if s.fixed != nil {
		labels = s.fixed.merge(units, labels)
	}
	return units, labels, nil
}
